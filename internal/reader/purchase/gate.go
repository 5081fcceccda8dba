package purchase

import "context"

// Gate decides how much of a content item a reader may see. It only reads
// local entitlement records and never touches the network.
type Gate struct {
	entitlements *Entitlements
}

func NewGate(store Store) *Gate {
	return &Gate{entitlements: NewEntitlements(store)}
}

func (g *Gate) IsUnlocked(ctx context.Context, contentID string) (bool, error) {
	_, ok, err := g.entitlements.Get(ctx, contentID)
	return ok, err
}

// PagesVisible returns totalPages when the content is unlocked and the free
// preview otherwise. Negative counts are treated as zero.
func (g *Gate) PagesVisible(ctx context.Context, contentID string, totalPages, freePreviewPages int) (int, error) {
	totalPages = max(totalPages, 0)
	freePreviewPages = max(freePreviewPages, 0)

	unlocked, err := g.IsUnlocked(ctx, contentID)
	if err != nil {
		return 0, err
	}
	if unlocked {
		return totalPages, nil
	}
	return min(freePreviewPages, totalPages), nil
}
