package cart

import (
	"context"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"storefront/internal/domain"
	"storefront/internal/store"
)

// Page is the render surface the engine patches: named regions whose
// content gets replaced wholesale. Writes to regions nobody is showing
// are a silent no-op on the implementation side.
type Page interface {
	SetHTML(id, html string)
	SetText(id, text string)
	Has(id string) bool
}

type Config struct {
	// RefreshOnReAdd updates a line's captured title, price and
	// thumbnail from the incoming product when an id already in the
	// cart is added again. Off by default: the values captured at
	// first add persist.
	RefreshOnReAdd bool
}

// Engine wires the cart together: it owns the observable state, keeps
// the durable store and the page regions in sync with it, and exposes
// the command surface the handlers call.
//
// All commands execute on a single run loop, one at a time; a command
// returns only after its state change, persistence and re-render have
// completed. That gives the same ordering guarantees as a
// single-threaded UI event loop: no interleaving within a command.
type Engine struct {
	state *State
	store store.Store
	page  Page
	cfg   Config

	tasks chan func()
	quit  chan struct{}
	wg    sync.WaitGroup

	startOnce sync.Once
	closeOnce sync.Once
}

func NewEngine(st store.Store, page Page, cfg Config) *Engine {
	return &Engine{
		state: NewState(nil),
		store: st,
		page:  page,
		cfg:   cfg,
		tasks: make(chan func(), 64),
		quit:  make(chan struct{}),
	}
}

// Start loads the persisted cart, registers the persistence and render
// subscribers, and starts the run loop. Calling Start again is a
// no-op, so a bootstrap path that runs more than once is safe.
func (e *Engine) Start(ctx context.Context) {
	e.startOnce.Do(func() {
		items, err := e.store.Load(ctx)
		if err != nil {
			log.WithError(err).Warn("loading persisted cart failed, starting empty")
			items = nil
		}

		e.state.Subscribe(e.persist)
		e.state.Subscribe(e.render)

		e.wg.Add(1)
		go e.loop()

		// Initial sync: regenerate the page from whatever survived.
		e.state.Set(items)
	})
}

// Close stops the run loop. Commands issued after Close are dropped.
func (e *Engine) Close() {
	e.closeOnce.Do(func() {
		close(e.quit)
		e.wg.Wait()
	})
}

func (e *Engine) loop() {
	defer e.wg.Done()
	for {
		select {
		case fn := <-e.tasks:
			fn()
		case <-e.quit:
			return
		}
	}
}

// do runs fn on the loop and waits for it to finish.
func (e *Engine) do(fn func()) {
	done := make(chan struct{})
	select {
	case e.tasks <- func() { fn(); close(done) }:
	case <-e.quit:
		return
	}
	select {
	case <-done:
	case <-e.quit:
	}
}

// post queues fn on the loop without waiting: next-tick semantics.
func (e *Engine) post(fn func()) {
	select {
	case e.tasks <- fn:
	case <-e.quit:
	}
}

// Add puts a product in the cart. It accepts a catalog.Product (value
// or pointer) or a JSON-encoded product string; malformed input or a
// missing id makes this a no-op.
func (e *Engine) Add(v any) {
	e.do(func() {
		p, ok := decodeProduct(v)
		if !ok {
			return
		}
		e.state.Update(func(items []domain.Item) []domain.Item {
			return addItem(items, p, e.cfg.RefreshOnReAdd)
		})
	})
}

// AddFromValues puts a product in the cart from string-keyed element
// attributes (id, title, price, thumbnail). A non-numeric id makes
// this a no-op.
func (e *Engine) AddFromValues(vals map[string]string) {
	e.do(func() {
		p, ok := productFromValues(vals)
		if !ok {
			return
		}
		e.state.Update(func(items []domain.Item) []domain.Item {
			return addItem(items, p, e.cfg.RefreshOnReAdd)
		})
	})
}

// Increment bumps the quantity of the line with the given id.
func (e *Engine) Increment(id int64) {
	e.do(func() {
		e.state.Update(func(items []domain.Item) []domain.Item {
			return incrementItem(items, id)
		})
	})
}

// Decrement lowers the quantity of the line with the given id,
// removing the line when it reaches zero.
func (e *Engine) Decrement(id int64) {
	e.do(func() {
		e.state.Update(func(items []domain.Item) []domain.Item {
			return decrementItem(items, id)
		})
	})
}

// Remove drops the line with the given id.
func (e *Engine) Remove(id int64) {
	e.do(func() {
		e.state.Update(func(items []domain.Item) []domain.Item {
			return removeItem(items, id)
		})
	})
}

// Clear empties the cart and erases the persisted entry, so "empty
// state" and "nothing persisted" agree.
func (e *Engine) Clear() {
	e.do(func() {
		e.state.Set(clearCart(e.state.Get()))

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		if err := e.store.Clear(ctx); err != nil {
			log.WithError(err).Warn("clearing persisted cart failed")
		}
	})
}

// Checkout is a stub: it confirms the order to the user without
// touching the cart. Real order submission lives elsewhere.
func (e *Engine) Checkout() {
	e.do(func() {
		items := e.state.Get()
		log.WithFields(log.Fields{
			"lines": len(items),
			"count": domain.Count(items),
		}).Info("checkout requested")
		e.page.SetHTML(RegionCartItems, renderCheckoutNotice())
	})
}

// NotifySwap tells the engine a page region was just replaced by a
// partial content swap. The re-render runs on the next loop tick so
// the swap settles first; redundant re-renders are harmless because
// rendering is a pure projection of state.
func (e *Engine) NotifySwap(target string) {
	id := strings.TrimPrefix(strings.TrimSpace(target), "#")
	e.post(func() {
		if id != RegionContent && !e.page.Has(RegionCartItems) {
			return
		}
		e.render(e.state.Get())
	})
}

// Items returns the current cart contents.
func (e *Engine) Items() []domain.Item {
	return e.state.Get()
}

// persist mirrors the state into the durable store. Failures are
// logged and swallowed: the in-memory cart stays authoritative.
func (e *Engine) persist(items []domain.Item) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := e.store.Save(ctx, items); err != nil {
		log.WithError(err).Warn("persisting cart failed")
	}
}

// render regenerates the cart panel and the header badge from state.
func (e *Engine) render(items []domain.Item) {
	e.page.SetHTML(RegionCartItems, RenderCart(items))
	e.page.SetText(RegionCartCount, RenderCount(items))
}
