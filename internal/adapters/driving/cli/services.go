package cli

import (
	"fmt"

	"github.com/Itterum/ts-app/internal/adapters/driven/idgen"
	"github.com/Itterum/ts-app/internal/adapters/driven/storage/memory"
	"github.com/Itterum/ts-app/internal/adapters/driven/storage/sqlite"
	"github.com/Itterum/ts-app/internal/core/domain"
	"github.com/Itterum/ts-app/internal/core/ports/driven"
	"github.com/Itterum/ts-app/internal/core/ports/driving"
	"github.com/Itterum/ts-app/internal/core/services"
)

// Entity kinds, as typed on the command line.
const (
	kindUser = "user"
	kindCar  = "car"
)

// Services bundles the gateways and helpers the commands use.
type Services struct {
	Users       driving.EntityGateway[domain.User]
	Cars        driving.EntityGateway[domain.Car]
	IDGenerator driven.IDGenerator
	Backend     domain.StorageBackend

	close func() error
}

// NewServices builds fresh, empty stores for the configured backend and
// puts a gateway in front of each. User passwords are hashed on the way in.
func NewServices(settings domain.Settings) (*Services, error) {
	var (
		users   driven.EntityStore[domain.User]
		cars    driven.EntityStore[domain.Car]
		closeFn = func() error { return nil }
	)

	switch settings.Backend {
	case domain.StorageMemory, "":
		users = memory.NewEntityStore[domain.User]()
		cars = memory.NewEntityStore[domain.Car]()
	case domain.StorageSQLite:
		db, err := sqlite.NewStore()
		if err != nil {
			return nil, fmt.Errorf("opening sqlite store: %w", err)
		}
		users = sqlite.NewEntityStore[domain.User](db, kindUser)
		cars = sqlite.NewEntityStore[domain.Car](db, kindCar)
		closeFn = db.Close
	default:
		return nil, fmt.Errorf("unknown storage backend %q", settings.Backend)
	}

	backend := settings.Backend
	if backend == "" {
		backend = domain.StorageMemory
	}

	return &Services{
		Users:       services.NewGateway[domain.User](kindUser, services.NewPasswordHashingStore(users, settings.BcryptCost)),
		Cars:        services.NewGateway[domain.Car](kindCar, cars),
		IDGenerator: idgen.NewUUIDGenerator(settings.IDLength),
		Backend:     backend,
		close:       closeFn,
	}, nil
}

// Close releases the stores. Their contents are lost.
func (s *Services) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}
