package owners

import "context"

type Repository interface {
	List(ctx context.Context) ([]Owner, error)
	Get(ctx context.Context, id int64) (*Owner, error)
	Create(ctx context.Context, o Owner) (Owner, error)
	Update(ctx context.Context, o Owner) (Owner, error)
}
