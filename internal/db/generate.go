package db

//go:generate sqlc generate
//go:generate mockgen -destination=../mocks/mock_querier.go -package=mocks . Querier
