//go:generate mockgen -source=../delivery.go -destination=./mock_delivery.go -package=mocks

package mocks
