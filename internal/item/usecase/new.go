package usecase

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"item-gallery/internal/item"
	"item-gallery/internal/item/repository"
	"item-gallery/internal/model"
	pkgLog "item-gallery/pkg/log"
)

const defaultRefreshTimeout = 10 * time.Second

// Options configures the controller.
type Options struct {
	BaseURL        string        // Static file root used by ImageURL
	RefreshTimeout time.Duration // Upper bound for a coalesced list request
}

type implUseCase struct {
	repo           repository.Repository
	l              pkgLog.Logger
	baseURL        string
	refreshTimeout time.Duration

	mu    sync.Mutex
	items []model.Item
	form  item.Form
	// formGen changes whenever the form is opened or closed.
	formGen uint64
	// mutationGen counts mutations the server acknowledged; appliedGen is the
	// generation of the list currently held.
	mutationGen uint64
	appliedGen  uint64

	refreshGroup singleflight.Group
	tasks        *taskSet
}

// New creates the item view state controller with an empty list and a closed form.
func New(repo repository.Repository, l pkgLog.Logger, opt Options) *implUseCase {
	if opt.RefreshTimeout <= 0 {
		opt.RefreshTimeout = defaultRefreshTimeout
	}
	return &implUseCase{
		repo:           repo,
		l:              l,
		baseURL:        opt.BaseURL,
		refreshTimeout: opt.RefreshTimeout,
		items:          []model.Item{},
		tasks:          newTaskSet(),
	}
}

var _ item.UseCase = (*implUseCase)(nil)
