package repo

//go:generate mockgen -package mock_repo -source=service.go -destination=mock_repo/service.go

// Service provices access to the different content repositories.
type Service interface {
	FeedRepo() Feed
}
