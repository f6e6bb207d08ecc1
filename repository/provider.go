package repository

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/salda8/mongodb-generic-repository/internal/names"
)

// Provider owns the database handle, configuration and the
// collection-handle cache shared by every repository built from it.
type Provider struct {
	db     *mongo.Database
	config Config
	logger *zap.SugaredLogger
	valid  *validator.Validate

	// collections caches collection handles keyed by base name and
	// partition key. Read-mostly: each distinct key is populated at
	// most once; a raced first lookup stores one of two equivalent
	// handles, which is harmless.
	collections sync.Map
}

// NewProvider creates a Provider over an existing database handle.
// Connection management belongs to the caller.
func NewProvider(db *mongo.Database, config Config) *Provider {
	config.validate()
	p := &Provider{
		db:     db,
		config: config,
		logger: config.Logger,
	}
	if config.Validation {
		p.valid = validator.New()
	}
	return p
}

// Database returns the underlying handle, for operations outside this
// layer such as index management or raw queries.
func (p *Provider) Database() *mongo.Database {
	return p.db
}

// collection resolves the physical collection for a base name and
// partition key. Resolution itself has no side effects; the store
// auto-creates the collection on first write, which is idempotent.
func (p *Provider) collection(base, partitionKey string) *mongo.Collection {
	cacheKey := base + "\x00" + partitionKey
	if c, ok := p.collections.Load(cacheKey); ok {
		return c.(*mongo.Collection)
	}
	name := names.Collection(base, partitionKey)
	c, loaded := p.collections.LoadOrStore(cacheKey, p.db.Collection(name))
	if !loaded {
		p.logger.Debugw("resolved collection",
			"collection", name,
			"partitionKey", partitionKey,
		)
	}
	return c.(*mongo.Collection)
}

// validateStruct runs struct-tag validation when the provider was
// configured with Validation.
func (p *Provider) validateStruct(doc any) error {
	if p.valid == nil {
		return nil
	}
	if err := p.valid.Struct(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}
