package query

import (
	"context"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"algoway/pkg/api"
	"algoway/pkg/route"
)

// RouteService is the remote side of a search
type RouteService interface {
	FetchCities(ctx context.Context) ([]route.City, error)
	FetchRoutes(ctx context.Context, q api.Query) ([]route.Route, error)
}

// Controller owns the query state and drives searches against a RouteService.
// It is safe for concurrent use.
type Controller struct {
	service RouteService
	logger  *logrus.Logger

	mu       sync.Mutex
	state    State
	latest   uint64
	onChange func(State)
}

func NewController(service RouteService, logger *logrus.Logger) *Controller {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	return &Controller{
		service: service,
		logger:  logger,
	}
}

// OnChange registers fn to receive a snapshot after every state change
func (c *Controller) OnChange(fn func(State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = fn
}

// Snapshot returns a copy of the current state
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.clone()
}

func (c *Controller) dispatch(e event) State {
	c.mu.Lock()
	c.state = reduce(c.state, e)
	snap := c.state.clone()
	fn := c.onChange
	c.mu.Unlock()

	if fn != nil {
		fn(snap)
	}
	return snap
}

// LoadCatalog fetches the list of valid cities. On failure the error is
// reported through the state and the catalog stays empty.
func (c *Controller) LoadCatalog(ctx context.Context) error {
	cities, err := c.service.FetchCities(ctx)
	if err != nil {
		c.logger.WithField("error", err).Error("failed to load city catalog")
		c.dispatch(catalogFailed{err: err})
		return &TransportError{Err: err}
	}

	c.logger.WithField("cities", len(cities)).Debug("city catalog loaded")
	c.dispatch(catalogLoaded{cities: cities})
	return nil
}

// SelectCity sets the origin or destination. nil clears the field.
// Once a catalog is loaded only its cities are accepted.
func (c *Controller) SelectCity(role Role, value *route.City) error {
	if value != nil {
		c.mu.Lock()
		catalog := c.state.Catalog
		c.mu.Unlock()

		if len(catalog) > 0 && !contains(catalog, *value) {
			return unknownCity(string(*value))
		}
		v := *value
		value = &v
	}

	c.dispatch(citySelected{role: role, value: value})
	return nil
}

func (c *Controller) SetSortCriterion(sort route.SortCriterion) {
	c.dispatch(sortChosen{sort: sort})
}

// SetFilter stores raw only when it is empty or all decimal digits.
// Anything else is ignored and the previous value kept.
func (c *Controller) SetFilter(field FilterField, raw string) bool {
	if raw != "" && !route.IsDigits(raw) {
		return false
	}
	c.dispatch(filterChanged{field: field, value: raw})
	return true
}

// Reset drops the current results. Selections and filters stay.
func (c *Controller) Reset() {
	c.dispatch(resultsCleared{})
}

// Pending tracks one in-flight search
type Pending struct {
	Seq  uint64
	done chan struct{}
}

// Done is closed once the search has settled, whether or not its result was kept
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until the search settles or ctx ends
func (p *Pending) Wait(ctx context.Context) error {
	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Search validates the current input and starts a request in the background.
// Validation failures are returned immediately and recorded in the state; no
// request is made. Only the most recently started search may change results:
// completions of older searches are dropped.
func (c *Controller) Search(ctx context.Context) (*Pending, error) {
	c.mu.Lock()
	s := c.state
	c.mu.Unlock()

	if verr := validate(s); verr != nil {
		// A rejected search is still the newest intent: in-flight searches lose.
		c.mu.Lock()
		c.latest++
		c.mu.Unlock()

		c.logger.WithField("code", verr.Code).Debug("search rejected")
		c.dispatch(searchRejected{err: verr})
		return nil, verr
	}

	q := api.Query{
		From:    *s.Origin,
		To:      *s.Destination,
		Sort:    s.Sort,
		Filters: s.Filters,
	}

	c.mu.Lock()
	c.latest++
	seq := c.latest
	c.mu.Unlock()

	c.dispatch(searchStarted{})

	c.logger.WithFields(logrus.Fields{
		"seq":  seq,
		"from": q.From,
		"to":   q.To,
		"sort": q.Sort,
	}).Info("searching routes")

	p := &Pending{Seq: seq, done: make(chan struct{})}
	go c.run(ctx, seq, q, p)

	return p, nil
}

func (c *Controller) run(ctx context.Context, seq uint64, q api.Query, p *Pending) {
	defer close(p.done)

	routes, err := c.service.FetchRoutes(ctx, q)

	if !c.isLatest(seq) {
		c.logger.WithField("seq", seq).Debug("discarding stale search result")
		return
	}

	defer c.settle(seq)

	if err != nil {
		c.logger.WithFields(logrus.Fields{
			"seq":   seq,
			"error": err,
		}).Warn("route search failed")
		c.dispatchIfLatest(seq, searchFailed{err: err})
		return
	}

	c.logger.WithFields(logrus.Fields{
		"seq":    seq,
		"routes": len(routes),
	}).Info("route search finished")
	c.dispatchIfLatest(seq, searchSucceeded{routes: routes})
}

func (c *Controller) settle(seq uint64) {
	c.dispatchIfLatest(seq, searchSettled{})
}

func (c *Controller) isLatest(seq uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return seq == c.latest
}

// dispatchIfLatest applies e only when no newer search has started in the meantime
func (c *Controller) dispatchIfLatest(seq uint64, e event) {
	c.mu.Lock()
	if seq != c.latest {
		c.mu.Unlock()
		return
	}
	c.state = reduce(c.state, e)
	snap := c.state.clone()
	fn := c.onChange
	c.mu.Unlock()

	if fn != nil {
		fn(snap)
	}
}

// SearchAndWait runs Search and blocks until it settles. The returned error is
// the outcome of this search: a *ValidationError, ErrNoRoutes, a *TransportError,
// or ctx.Err() if the caller gave up waiting.
func (c *Controller) SearchAndWait(ctx context.Context) (State, error) {
	p, err := c.Search(ctx)
	if err != nil {
		return c.Snapshot(), err
	}
	if err := p.Wait(ctx); err != nil {
		return c.Snapshot(), err
	}

	s := c.Snapshot()
	if !c.isLatest(p.Seq) {
		return s, nil
	}
	return s, s.Err
}

func validate(s State) *ValidationError {
	if s.Origin == nil || s.Destination == nil || *s.Origin == "" || *s.Destination == "" {
		return &ValidationError{Code: CodeMissingCities}
	}
	if *s.Origin == *s.Destination {
		return &ValidationError{Code: CodeSameCity}
	}
	if s.Sort == "" {
		return &ValidationError{Code: CodeMissingSort}
	}
	return nil
}

func contains(cities []route.City, c route.City) bool {
	for _, city := range cities {
		if city == c {
			return true
		}
	}
	return false
}
