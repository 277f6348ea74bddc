//go:generate mockgen -source=../client.go -destination=./mock_client.go -package=mocks

package mocks
