package store

import "context"

// Searcher is the free-text search collaborator. The store owns no indexing
// logic; it only re-applies the soft-delete filter to the IDs returned here.
type Searcher interface {
	Search(ctx context.Context, query string) ([]int64, error)
}

// Favorites answers whether a user has bookmarked an apartment. Consulted only
// to enrich GetApartment responses.
type Favorites interface {
	IsFavorited(ctx context.Context, apartmentID int64, username string) (bool, error)
}

// SchoolDirectory resolves a school to the communities within its reach.
type SchoolDirectory interface {
	CommunityIDsForSchool(ctx context.Context, schoolID int64) ([]int64, error)
}
