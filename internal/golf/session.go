package golf

import (
	"fmt"
	"math/rand"
)

// Variant selects how a shot is resolved.
type Variant int

const (
	// VariantInstant moves the ball straight to its landing spot.
	VariantInstant Variant = iota
	// VariantPhysics rolls the ball frame by frame.
	VariantPhysics
)

func (v Variant) String() string {
	if v == VariantPhysics {
		return "physics"
	}
	return "instant"
}

// ParseVariant resolves a variant name.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "instant", "":
		return VariantInstant, nil
	case "physics":
		return VariantPhysics, nil
	}
	return VariantInstant, fmt.Errorf("golf: unknown variant %q", s)
}

// Control selects who takes the shots.
type Control int

const (
	ControlAI Control = iota
	ControlManual
)

func (c Control) String() string {
	if c == ControlManual {
		return "manual"
	}
	return "ai"
}

// Phase is where the current turn stands.
type Phase int

const (
	PhaseIdle    Phase = iota // no players
	PhaseReady                // current player may shoot
	PhaseRolling              // physics ball in motion
	PhaseWaiting              // counting down the turn delay
	PhaseOver                 // every player finished
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseReady:
		return "ready"
	case PhaseRolling:
		return "rolling"
	case PhaseWaiting:
		return "waiting"
	case PhaseOver:
		return "over"
	}
	return "unknown"
}

// SessionConfig assembles the policies of one round.
type SessionConfig struct {
	Variant        Variant
	Control        Control
	Rules          Rules
	Planner        PlannerConfig
	Physics        PhysicsConfig
	TurnDelayTicks int // ticks between a resolved shot and the next turn
}

// DefaultSessionConfig is AI-driven instant play with a two second delay at
// 60 ticks per second.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		Variant:        VariantInstant,
		Control:        ControlAI,
		Rules:          DefaultRules(),
		Planner:        DefaultPlannerConfig(),
		Physics:        DefaultPhysicsConfig(),
		TurnDelayTicks: 120,
	}
}

// Session is the whole mutable state of a round. It is not safe for
// concurrent use; hosts drive it from a single loop.
type Session struct {
	cfg     SessionConfig
	course  *Course
	planner *Planner
	rng     *rand.Rand

	players []*Player
	nextID  int
	current int

	active  bool
	over    bool
	phase   Phase
	waiting int
	handoff bool // the running wait ends by passing the turn on

	ball     Ball
	aimAngle float64
	aimPower float64
	lastShot *Shot
	last     *ShotResult

	tick    uint64
	events  []Event
	message string
}

// NewSession creates an empty session on course. The seed drives skill
// assignment and shot noise.
func NewSession(course *Course, cfg SessionConfig, seed int64) *Session {
	if cfg.Rules.MaxShotDistance <= 0 {
		cfg.Rules = DefaultRules()
	}
	if cfg.Physics.Friction <= 0 {
		cfg.Physics = DefaultPhysicsConfig()
	}
	if cfg.TurnDelayTicks < 0 {
		cfg.TurnDelayTicks = 0
	}
	planner := NewPlanner(cfg.Planner)
	cfg.Planner = planner.Config()
	return &Session{
		cfg:      cfg,
		course:   course,
		planner:  planner,
		rng:      rand.New(rand.NewSource(seed)),
		phase:    PhaseIdle,
		aimPower: 0.5,
	}
}

// Config returns the session configuration.
func (s *Session) Config() SessionConfig { return s.cfg }

// Course returns the course. Designer edits made through it apply to the
// running session.
func (s *Session) Course() *Course { return s.course }

// Players returns the players in turn order.
func (s *Session) Players() []*Player { return s.players }

// Phase returns the current turn phase.
func (s *Session) Phase() Phase { return s.phase }

// Active reports whether the round is in progress.
func (s *Session) Active() bool { return s.active }

// Over reports whether every player has finished.
func (s *Session) Over() bool { return s.over }

// Tick returns the number of ticks processed.
func (s *Session) Tick() uint64 { return s.tick }

// Message returns the most recent event message.
func (s *Session) Message() string { return s.message }

// LastResult returns the most recently resolved shot, if any.
func (s *Session) LastResult() (ShotResult, bool) {
	if s.last == nil {
		return ShotResult{}, false
	}
	return *s.last, true
}

// Current returns the player whose turn it is, or nil with no players.
func (s *Session) Current() *Player {
	if len(s.players) == 0 {
		return nil
	}
	return s.players[s.current%len(s.players)]
}

// Ball returns the rolling ball of the physics variant.
func (s *Session) Ball() Ball { return s.ball }

// DrainEvents returns and clears pending events.
func (s *Session) DrainEvents() []Event {
	out := s.events
	s.events = nil
	return out
}

func (s *Session) emit(kind EventKind, sev Severity, p *Player, hole int, msg string) {
	e := Event{Tick: s.tick, Kind: kind, Severity: sev, Hole: hole, Message: msg}
	if p != nil {
		e.PlayerID = p.ID
		if hole > 0 && hole <= HoleCount {
			e.Strokes = p.Strokes[hole-1]
		}
	}
	s.events = append(s.events, e)
	s.message = msg
}

// AddPlayer registers a player. Invalid names leave the session untouched.
// The first player starts the round; a player joining a finished round
// reopens it.
func (s *Session) AddPlayer(raw string) (*Player, error) {
	name, err := ValidateName(raw)
	if err != nil {
		msg := "Please enter a player name"
		if err == ErrNameTooLong {
			msg = "Name must be 12 characters or less"
		}
		s.emit(EventInvalidInput, SeverityWarning, nil, 0, msg)
		return nil, err
	}

	s.nextID++
	p := NewPlayer(s.nextID, name, s.course)
	p.ColorIndex = len(s.players) % len(Palette)
	p.Color = Palette[p.ColorIndex]
	p.Skill = RandomStyle(s.rng)
	s.players = append(s.players, p)
	s.emit(EventPlayerJoined, SeveritySuccess, p, 0, fmt.Sprintf("%s joined the game!", name))

	switch {
	case !s.active && !s.over:
		s.start()
	case s.over:
		s.over = false
		s.active = true
		s.current = len(s.players) - 1
		s.beginTurn()
	}
	return p, nil
}

// RemovePlayer drops a player. Removing the player whose turn it is cancels
// any pending delay or rolling ball and hands the turn to whoever now holds
// that slot.
func (s *Session) RemovePlayer(id int) error {
	idx := -1
	for i, p := range s.players {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %d", ErrUnknownPlayer, id)
	}

	gone := s.players[idx]
	wasCurrent := idx == s.current
	s.players = append(s.players[:idx], s.players[idx+1:]...)
	s.emit(EventPlayerLeft, SeverityInfo, gone, 0, fmt.Sprintf("%s left the game", gone.Name))

	if len(s.players) == 0 {
		s.current = 0
		s.active = false
		s.over = false
		s.phase = PhaseIdle
		s.ball = Ball{}
		s.emit(EventPaused, SeverityWarning, nil, 0, "Add players to start the game!")
		return nil
	}

	if idx < s.current {
		s.current--
	}
	s.current %= len(s.players)

	if !s.active {
		return nil
	}
	if s.allFinished() {
		s.endGame()
		return nil
	}
	if wasCurrent {
		s.ball = Ball{}
		s.handoff = false
		s.beginTurn()
	}
	return nil
}

func (s *Session) start() {
	s.current = 0
	s.active = true
	s.over = false
	msg := "Game started! Players will take shots automatically."
	if s.cfg.Control == ControlManual {
		msg = "Game started! Aim with left/right, set power with up/down."
	}
	s.emit(EventGameStarted, SeverityInfo, nil, 0, msg)
	s.beginTurn()
	if s.cfg.Control == ControlAI && s.cfg.TurnDelayTicks > 0 {
		s.wait(false)
	}
}

func (s *Session) wait(handoff bool) {
	s.phase = PhaseWaiting
	s.waiting = s.cfg.TurnDelayTicks
	s.handoff = handoff
}

// beginTurn readies the current player, skipping ahead if they have already
// finished.
func (s *Session) beginTurn() {
	p := s.Current()
	if p == nil {
		s.phase = PhaseIdle
		return
	}
	if p.Finished() {
		s.advanceTurn()
		return
	}
	hole := s.course.Holes[p.CurrentHole]
	s.aimAngle = Bearing(p.Position(), hole.Cup)
	s.ball = Ball{Pos: p.Position()}
	s.phase = PhaseReady
}

// advanceTurn passes play round-robin to the next unfinished player.
func (s *Session) advanceTurn() {
	n := len(s.players)
	if n == 0 {
		s.phase = PhaseIdle
		return
	}
	if s.allFinished() {
		s.endGame()
		return
	}
	for i := 0; i < n; i++ {
		s.current = (s.current + 1) % n
		if !s.players[s.current].Finished() {
			break
		}
	}
	s.beginTurn()
}

func (s *Session) allFinished() bool {
	for _, p := range s.players {
		if !p.Finished() {
			return false
		}
	}
	return len(s.players) > 0
}

func (s *Session) endGame() {
	s.over = true
	s.active = false
	s.phase = PhaseOver
	if w := PickWinner(s.players); w != nil {
		s.emit(EventGameOver, SeveritySuccess, w, 0,
			fmt.Sprintf("Game Over! %s wins with %d strokes!", w.Name, w.Total))
	}
}

// Step advances the session by one tick.
func (s *Session) Step() {
	s.tick++
	if !s.active || s.over {
		return
	}

	if s.phase == PhaseWaiting {
		s.waiting--
		if s.waiting > 0 {
			return
		}
		if s.handoff {
			s.handoff = false
			s.advanceTurn()
		} else {
			s.beginTurn()
		}
		if s.phase != PhaseReady {
			return
		}
	}

	switch s.phase {
	case PhaseReady:
		if s.cfg.Control == ControlAI {
			s.takeAIShot()
		}
	case PhaseRolling:
		p := s.Current()
		hole := s.course.Holes[p.CurrentHole]
		if c := s.ball.Step(s.cfg.Physics, hole, s.course.Width, s.course.Height); c.Terminal() {
			s.resolveRoll(c)
		}
	}
}

// RunToEnd steps until the round ends or maxTicks pass. It reports whether
// the round finished.
func (s *Session) RunToEnd(maxTicks int) bool {
	for i := 0; i < maxTicks && s.active && !s.over; i++ {
		s.Step()
	}
	return s.over
}

func (s *Session) takeAIShot() {
	p := s.Current()
	hole := s.course.Holes[p.CurrentHole]
	shot := s.planner.Plan(s.rng, p.Position(), hole.Cup, hole.Obstacles, p.Skill)
	s.execute(p, shot)
}

func (s *Session) execute(p *Player, shot Shot) {
	s.lastShot = &shot
	hole := s.course.Holes[p.CurrentHole]

	if s.cfg.Variant == VariantPhysics {
		p.chargeStroke()
		s.ball = Ball{Pos: p.Position()}
		s.ball.Launch(shot.Angle, shot.Power, s.cfg.Physics)
		s.phase = PhaseRolling
		s.emit(EventShot, SeverityInfo, p, hole.ID, fmt.Sprintf("%s shoots (%.0f%% power)", p.Name, shot.Power*100))
		return
	}

	res := ApplyShot(p, hole, shot, s.cfg.Rules, s.course.Bounds(s.cfg.Rules.Margin))
	s.ball = Ball{Pos: res.Landing}
	s.afterShot(p, hole, res)
}

func (s *Session) resolveRoll(c Contact) {
	p := s.Current()
	hole := s.course.Holes[p.CurrentHole]
	from := p.Position()
	if c == ContactWater {
		s.emit(EventWaterHazard, SeverityWarning, p, hole.ID,
			fmt.Sprintf("%s found the water! Back to the tee.", p.Name))
	}
	p.Positions[p.CurrentHole] = s.ball.Pos
	res := settle(p, hole, s.cfg.Rules, c == ContactCup)
	res.From = from
	res.Landing = s.ball.Pos
	s.afterShot(p, hole, res)
}

func (s *Session) afterShot(p *Player, hole Hole, res ShotResult) {
	s.last = &res
	switch res.Outcome {
	case OutcomeHoled:
		s.emit(EventHoleCompleted, SeveritySuccess, p, hole.ID,
			fmt.Sprintf("%s completed hole %d in %d strokes!", p.Name, hole.ID, res.Strokes))
	case OutcomeAbandoned:
		s.emit(EventHoleAbandoned, SeverityWarning, p, hole.ID,
			fmt.Sprintf("%s moved to next hole after %d strokes", p.Name, res.Strokes))
	}
	if res.Finished {
		s.emit(EventPlayerFinished, SeveritySuccess, p, 0,
			fmt.Sprintf("%s finished the course! Total: %d", p.Name, p.Total))
	}

	if s.allFinished() {
		s.endGame()
		return
	}
	if s.cfg.TurnDelayTicks > 0 {
		s.wait(true)
		return
	}
	s.advanceTurn()
}

// AimAngle returns the manual aim angle and power.
func (s *Session) AimAngle() (angle, power float64) {
	return s.aimAngle, s.aimPower
}

// Aim rotates the manual aim by delta radians.
func (s *Session) Aim(delta float64) {
	s.aimAngle += delta
}

// AdjustPower nudges manual power, keeping it within the planner's range.
func (s *Session) AdjustPower(delta float64) {
	s.aimPower = clampF(s.aimPower+delta, s.cfg.Planner.MinPower, s.cfg.Planner.MaxPower)
}

// AimAt points the manual aim at a course point with enough power to reach it.
func (s *Session) AimAt(target Vec) {
	p := s.Current()
	if p == nil || p.Finished() {
		return
	}
	from := p.Position()
	s.aimAngle = Bearing(from, target)
	s.aimPower = clampF(Dist(from, target)/s.cfg.Rules.MaxShotDistance, s.cfg.Planner.MinPower, s.cfg.Planner.MaxPower)
}

// Shoot fires the manual aim for the current player.
func (s *Session) Shoot() error {
	if !s.active || s.over || s.phase != PhaseReady {
		return ErrNotReady
	}
	p := s.Current()
	shot := Shot{
		Aim:   Toward(p.Position(), s.aimAngle, s.aimPower*s.cfg.Rules.MaxShotDistance),
		Angle: s.aimAngle,
		Power: s.aimPower,
	}
	s.execute(p, shot)
	return nil
}

// PickWinner returns the player with the fewest total strokes. Ties go to
// the lowest ID, which is the earliest registration.
func PickWinner(players []*Player) *Player {
	var best *Player
	for _, p := range players {
		if best == nil || p.Total < best.Total || (p.Total == best.Total && p.ID < best.ID) {
			best = p
		}
	}
	return best
}

// Winner returns the winner once the round is over.
func (s *Session) Winner() (*Player, bool) {
	if !s.over {
		return nil, false
	}
	w := PickWinner(s.players)
	return w, w != nil
}
