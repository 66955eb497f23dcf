package composer

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/motorpool/pkg/types"
)

// Phrase joiners used by Render. The first capability phrase follows the
// base text with " with "; every later one with " and ".
const (
	joinFirst = " with "
	joinRest  = " and "
)

// Composer builds entities under one unconsumed-field policy. It holds no
// per-construction state and is safe for concurrent use.
type Composer struct {
	strict bool
	logger *zap.Logger
	newID  func() string
}

// Option configures a Composer.
type Option func(*Composer)

// WithLogger sets the logger used for debug tracing of construction.
func WithLogger(l *zap.Logger) Option {
	return func(c *Composer) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithIDGenerator replaces the UUID v7 generator, mainly for tests.
func WithIDGenerator(fn func() string) Option {
	return func(c *Composer) {
		if fn != nil {
			c.newID = fn
		}
	}
}

// New creates a Composer for cfg. Returns a types config error if cfg does
// not validate.
func New(cfg types.Config, opts ...Option) (*Composer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	c := &Composer{
		strict: cfg.Strict(),
		logger: zap.NewNop(),
		newID:  generateUUID,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Create assembles an entity with the given capabilities from fields. Base is
// implied. fields is not modified.
//
// Errors: ErrUnknownCapability for an unrecognized tag, *MissingFieldError
// and *InvalidFieldError from the layer that owns the field, and
// *UnconsumedFieldError in strict mode when fields are left over. No entity
// is returned on error.
func (c *Composer) Create(caps []types.Capability, fields types.Fields) (*types.Entity, error) {
	res, err := ResolutionOrder(caps)
	if err != nil {
		return nil, err
	}
	return c.assemble(res, fields)
}

// CreateKind assembles an entity of a named kind such as types.KindPickup.
func (c *Composer) CreateKind(kind types.Kind, fields types.Fields) (*types.Entity, error) {
	res, err := KindOrder(kind)
	if err != nil {
		return nil, err
	}
	return c.assemble(res, fields)
}

func (c *Composer) assemble(res Resolution, fields types.Fields) (*types.Entity, error) {
	a := &types.Assembly{Kind: res.Kind}
	if err := c.walk(a, res.Order, 0, fields.Clone()); err != nil {
		c.logger.Debug("entity construction failed",
			zap.String("kind", string(res.Kind)),
			zap.Error(err))
		return nil, err
	}
	a.ID = c.newID()

	e := a.Seal()
	c.logger.Debug("entity assembled",
		zap.String("id", e.ID()),
		zap.String("kind", string(e.Kind())),
		zap.Stringers("lineage", e.Lineage()))
	return e, nil
}

// walk runs the layer at cursor, handing it a continuation that runs the
// layer after it. Past the last layer, leftover fields meet the policy.
func (c *Composer) walk(a *types.Assembly, order []types.Capability, cursor int, remaining types.Fields) error {
	if cursor == len(order) {
		return c.settle(remaining)
	}
	l, ok := layers[order[cursor]]
	if !ok {
		return fmt.Errorf("%w: %q", types.ErrUnknownCapability, order[cursor])
	}
	c.logger.Debug("layer init", zap.Stringer("layer", l.capability()), zap.Int("cursor", cursor))
	return l.init(a, remaining, func(rest types.Fields) error {
		return c.walk(a, order, cursor+1, rest)
	})
}

// settle applies the unconsumed-field policy to whatever no layer claimed.
func (c *Composer) settle(remaining types.Fields) error {
	if len(remaining) == 0 {
		return nil
	}
	names := remaining.Names()
	if c.strict {
		return &types.UnconsumedFieldError{Fields: names}
	}
	c.logger.Debug("dropping unconsumed fields", zap.Strings("fields", names))
	return nil
}

// Render describes e. See the package-level Render.
func (c *Composer) Render(e *types.Entity) string {
	return Render(e)
}

// Render describes e base-first: "{year} {make} {model}", then each
// capability phrase in linearization order. For the pickup kind this gives
// "2023 Toyota Hilux with 5 passengers and capacity of 1.5 tons".
// The result depends only on e's attributes.
func Render(e *types.Entity) string {
	order := []types.Capability{types.CapabilityBase}
	if res, err := KindOrder(e.Kind()); err == nil {
		order = res.Order
	}

	var b strings.Builder
	b.WriteString(layers[types.CapabilityBase].describe(e))
	join := joinFirst
	for _, c := range order[:len(order)-1] {
		b.WriteString(join)
		b.WriteString(layers[c].describe(e))
		join = joinRest
	}
	return b.String()
}

// generateUUID generates a new UUID v7 for entity IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
