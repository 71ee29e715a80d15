package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"stylemart/config"
	"stylemart/internal/domain/repository"
	"stylemart/internal/domain/service"
	"stylemart/internal/errors"
	"stylemart/internal/infra/catalog"
	"stylemart/internal/infra/persistence/localstore"

	"golang.org/x/crypto/bcrypt"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-session-secret"
	cfg.Auth = &config.AuthConfig{
		BcryptCost:        bcrypt.MinCost,
		PasswordMinLength: 6,
		SessionTTL:        time.Hour,
	}
	cfg.Gateway = config.GatewayConfig{
		KeyID:        "rzp_test_key",
		KeySecret:    "secret",
		Currency:     "INR",
		MerchantName: "StyleMart",
	}

	return cfg
}

// stores bundles repositories over one in-memory bucket, mirroring how every
// store reads the same underlying storage in production.
type stores struct {
	kv       repository.KVStore
	cart     repository.CartRepository
	wishlist repository.WishlistRepository
	identity repository.IdentityRepository
	order    repository.OrderRepository
	mode     repository.ShopModeRepository
	catalog  repository.CatalogRepository
}

func newStores(t *testing.T) *stores {
	t.Helper()

	logger := newTestLogger()
	kv := localstore.OpenMem()

	return &stores{
		kv:       kv,
		cart:     localstore.NewCartRepository(kv, logger),
		wishlist: localstore.NewWishlistRepository(kv, logger),
		identity: localstore.NewIdentityRepository(kv, logger),
		order:    localstore.NewOrderRepository(kv, logger),
		mode:     localstore.NewShopModeRepository(kv, logger),
		catalog:  catalog.New(),
	}
}

// fakeGateway records order-creation calls and answers with a canned gateway
// order, or fails every call when failWith is set.
type fakeGateway struct {
	mu       sync.Mutex
	calls    []service.GatewayOrderRequest
	failWith error
	nextID   string
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{nextID: "order_fake_1"}
}

func (g *fakeGateway) CreateOrder(_ context.Context, req service.GatewayOrderRequest) (*service.GatewayOrder, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.calls = append(g.calls, req)
	if g.failWith != nil {
		return nil, g.failWith
	}

	return &service.GatewayOrder{
		ID:       g.nextID,
		Amount:   req.Amount,
		Currency: req.Currency,
		Receipt:  req.Receipt,
	}, nil
}

func (g *fakeGateway) KeyID() string {
	return "rzp_test_key"
}

func (g *fakeGateway) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.calls)
}

func failingGateway() *fakeGateway {
	g := newFakeGateway()
	g.failWith = errors.New("gateway unavailable")

	return g
}
