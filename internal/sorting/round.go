package sorting

import (
	"math/rand/v2"
	"slices"
	"time"

	"github.com/rs/zerolog"

	"github.com/abhisek/conceptsort/internal/activity"
)

// State is the lifecycle stage of a Round.
type State int

const (
	StateInitializing State = iota
	StateActive
	StateReadyToAdvance
)

func (s State) String() string {
	switch s {
	case StateInitializing:
		return "initializing"
	case StateActive:
		return "active"
	case StateReadyToAdvance:
		return "ready"
	}
	return "unknown"
}

// DragEnd is the payload of a finished drag gesture. An empty Over means
// the item was released outside any drop target.
type DragEnd struct {
	ItemID string
	Over   string
}

// Option configures a Round.
type Option func(*Round)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(r *Round) { r.now = now }
}

// WithSeed makes shuffles reproducible.
func WithSeed(seed uint64) Option {
	return func(r *Round) { r.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

// WithLogger attaches a logger for placement tracing.
func WithLogger(log zerolog.Logger) Option {
	return func(r *Round) { r.log = log }
}

// Round is the state of one sorting question: the item set, the three zone
// sequences, the regret counter and the round clock. Every item id is in
// exactly one zone at all times; Place is the only way to move one.
//
// A Round is not safe for concurrent use.
type Round struct {
	items []Item
	byID  map[string]Item

	zones map[Zone][]string
	where map[string]Zone

	regret int

	started    bool
	startedAt  time.Time
	elapsed    time.Duration
	hasElapsed bool

	now func() time.Time
	rng *rand.Rand
	log zerolog.Logger
}

// NewRound returns a round in the initializing state.
func NewRound(opts ...Option) *Round {
	r := &Round{
		now: time.Now,
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.rng == nil {
		r.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	r.clear()
	return r
}

// Start begins a round for a, discarding any previous state.
func (r *Round) Start(a activity.Activity) {
	r.StartItems(ItemsFor(a))
}

// StartItems begins a round over an explicit item set.
func (r *Round) StartItems(items []Item) {
	r.items = slices.Clone(items)
	r.byID = make(map[string]Item, len(items))
	for _, it := range r.items {
		r.byID[it.ID] = it
	}
	r.started = true
	r.shuffleIntoUnsorted()

	r.log.Debug().Int("items", len(r.items)).Msg("round started")
}

// Reset reshuffles the current item set back into the unsorted pool and
// restarts the clock.
func (r *Round) Reset() {
	if !r.started {
		return
	}
	r.shuffleIntoUnsorted()
	r.log.Debug().Msg("round reset")
}

func (r *Round) shuffleIntoUnsorted() {
	r.clear()

	ids := make([]string, len(r.items))
	for i, it := range r.items {
		ids[i] = it.ID
	}
	r.rng.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })

	r.zones[ZoneUnsorted] = ids
	for _, id := range ids {
		r.where[id] = ZoneUnsorted
	}
	r.startedAt = r.now()
}

func (r *Round) clear() {
	r.zones = map[Zone][]string{
		ZoneUnsorted: {},
		ZoneGroupA:   {},
		ZoneGroupB:   {},
	}
	r.where = make(map[string]Zone, len(r.items))
	r.regret = 0
	r.elapsed = 0
	r.hasElapsed = false
}

// Place moves id to the end of zone. It reports whether anything changed;
// an unknown item, an invalid zone or an unstarted round is a no-op.
//
// Moving an item out of group A or B counts as regret, including a drop
// back onto the group it already occupies.
func (r *Round) Place(id string, zone Zone) bool {
	if !r.started || !zone.Valid() {
		return false
	}
	prev, ok := r.where[id]
	if !ok {
		return false
	}

	if prev.IsGroup() {
		r.regret++
	}
	r.zones[prev] = slices.DeleteFunc(r.zones[prev], func(x string) bool { return x == id })
	r.zones[zone] = append(r.zones[zone], id)
	r.where[id] = zone

	r.elapsed = r.now().Sub(r.startedAt)
	r.hasElapsed = true

	r.log.Debug().
		Str("item", id).
		Str("from", string(prev)).
		Str("to", string(zone)).
		Int("regret", r.regret).
		Msg("item placed")
	return true
}

// HandleDragEnd applies a drag gesture. Releases outside a drop target or
// over an unknown target are ignored.
func (r *Round) HandleDragEnd(e DragEnd) bool {
	if e.Over == "" {
		return false
	}
	zone, ok := ParseZone(e.Over)
	if !ok {
		return false
	}
	return r.Place(e.ItemID, zone)
}

// ZoneOf returns the zone currently holding id.
func (r *Round) ZoneOf(id string) (Zone, bool) {
	z, ok := r.where[id]
	return z, ok
}

// Item looks up an item by id.
func (r *Round) Item(id string) (Item, bool) {
	it, ok := r.byID[id]
	return it, ok
}

// Zones returns a copy of the current zone sequences.
func (r *Round) Zones() Membership {
	return Membership{
		Unsorted: slices.Clone(r.zones[ZoneUnsorted]),
		GroupA:   slices.Clone(r.zones[ZoneGroupA]),
		GroupB:   slices.Clone(r.zones[ZoneGroupB]),
	}
}

// Total is the number of items in the round.
func (r *Round) Total() int { return len(r.items) }

// Correct counts items sitting in their correct group.
func (r *Round) Correct() int {
	n := 0
	for _, z := range []Zone{ZoneGroupA, ZoneGroupB} {
		want, _ := z.Group()
		for _, id := range r.zones[z] {
			if r.byID[id].Correct == want {
				n++
			}
		}
	}
	return n
}

// Score is the current 0-10 score.
func (r *Round) Score() float64 {
	return ScoreFor(r.Correct(), r.Total())
}

// Regret is the number of moves out of an already classified zone.
func (r *Round) Regret() int { return r.regret }

// Unsorted is the number of items not yet classified.
func (r *Round) Unsorted() int { return len(r.zones[ZoneUnsorted]) }

// CanAdvance reports whether every item has been classified.
func (r *Round) CanAdvance() bool {
	return r.started && len(r.zones[ZoneUnsorted]) == 0
}

// State reports the lifecycle stage.
func (r *Round) State() State {
	switch {
	case !r.started:
		return StateInitializing
	case r.CanAdvance():
		return StateReadyToAdvance
	default:
		return StateActive
	}
}

// Elapsed returns the time recorded at the last placement.
func (r *Round) Elapsed() (time.Duration, bool) {
	return r.elapsed, r.hasElapsed
}

// Running returns the time since the round (re)started.
func (r *Round) Running() time.Duration {
	if !r.started {
		return 0
	}
	return r.now().Sub(r.startedAt)
}

// Finalize snapshots the round. Elapsed time is measured now.
func (r *Round) Finalize() Result {
	res := Result{
		Score:        r.Score(),
		RegretFactor: r.regret,
	}
	if r.started {
		ms := r.now().Sub(r.startedAt).Milliseconds()
		res.ElapsedMs = &ms
	}
	return res
}
