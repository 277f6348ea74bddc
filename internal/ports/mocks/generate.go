//go:generate mockgen -source=../user_repository.go   -destination=./mock_user_repository.go   -package=mocks
//go:generate mockgen -source=../user_cache.go        -destination=./mock_user_cache.go        -package=mocks
//go:generate mockgen -source=../user_validator.go    -destination=./mock_user_validator.go    -package=mocks
//go:generate mockgen -source=../password_hasher.go   -destination=./mock_password_hasher.go   -package=mocks
//go:generate mockgen -source=../user_read_service.go -destination=./mock_user_read_service.go -package=mocks

package mocks
