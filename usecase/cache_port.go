package usecase

import "context"

// MetadataKind names one of the cached metadata lists.
type MetadataKind string

const (
	MetadataBrands        MetadataKind = "brands"
	MetadataCategories    MetadataKind = "categories"
	MetadataSubCategories MetadataKind = "sub-categories"
	MetadataSegments      MetadataKind = "segments"
)

// MetadataKinds lists every cached metadata kind.
func MetadataKinds() []MetadataKind {
	return []MetadataKind{MetadataBrands, MetadataCategories, MetadataSubCategories, MetadataSegments}
}

// MetadataCache abstracts the metadata cache so use cases stay storage-agnostic.
// Get reports a miss with ok=false and a nil error.
//
// Every Invalidate advances the cache generation. Callers read Generation
// before computing a list and hand it to Set; Set drops the write when the
// generation has moved on, so a list computed before a catalog write never
// replaces the invalidation that followed it.
type MetadataCache interface {
	Get(ctx context.Context, kind MetadataKind) (values []string, ok bool, err error)
	Generation(ctx context.Context) (int64, error)
	Set(ctx context.Context, kind MetadataKind, generation int64, values []string) (stored bool, err error)
	Invalidate(ctx context.Context) error
}
