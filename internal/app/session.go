package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"golife/internal/core"
	"golife/internal/store"
	"golife/pkg/life"
)

// ErrNotAllowed reports an action the session does not accept in its
// current mode.
var ErrNotAllowed = errors.New("action not allowed")

// Mode is the interaction state of a session.
type Mode uint8

const (
	// ModeReady is a new, cleared or freshly loaded game.
	ModeReady Mode = iota
	// ModePlaying advances the game on every loop tick.
	ModePlaying
	// ModePaused is a started game on hold.
	ModePaused
	// ModeOver is a finished game, or a periodic one the user chose to stop.
	ModeOver
)

func (m Mode) String() string {
	switch m {
	case ModePlaying:
		return "playing"
	case ModePaused:
		return "paused"
	case ModeOver:
		return "over"
	default:
		return "ready"
	}
}

// PromptKind identifies the question or notice waiting for the user.
type PromptKind uint8

const (
	PromptNone PromptKind = iota
	// PromptFinished announces the end of the game.
	PromptFinished
	// PromptPeriodic asks whether to keep playing a repeating game.
	PromptPeriodic
)

// Prompt is a pending notice for the user.
type Prompt struct {
	Kind    PromptKind
	Message string
}

const delayKey = "delay_ms"

var delayControl = core.ParameterControl{
	Key:    delayKey,
	Label:  "Delay (ms)",
	Type:   core.ParamTypeInt,
	Step:   50,
	Min:    float64(core.MinDelay / time.Millisecond),
	Max:    float64(core.MaxDelay / time.Millisecond),
	HasMin: true,
	HasMax: true,
}

var (
	_ core.ParameterControlsProvider = (*Session)(nil)
	_ core.IntParameterSetter        = (*Session)(nil)
)

// Session drives one game for an interactive front-end: it paces steps,
// gates actions by mode and raises prompts when the game ends or repeats.
type Session struct {
	game   *life.Game
	loop   *core.Loop
	store  store.Store
	logger *log.Logger

	mode        Mode
	prompt      Prompt
	sawPeriodic bool
}

// NewSession wraps game. st may be nil, in which case saving and loading
// fail. A nil logger logs to the standard logger.
func NewSession(game *life.Game, loop *core.Loop, st store.Store, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.Default()
	}
	if loop == nil {
		loop = core.NewLoop(core.DefaultDelay)
	}
	loop.Pause()
	return &Session{
		game:        game,
		loop:        loop,
		store:       st,
		logger:      logger,
		sawPeriodic: game.Periodic(),
	}
}

// Game returns the current game.
func (s *Session) Game() *life.Game { return s.game }

// Mode returns the interaction state.
func (s *Session) Mode() Mode { return s.mode }

// Prompt returns the pending notice, if any.
func (s *Session) Prompt() Prompt { return s.prompt }

// Delay returns the pause between generations.
func (s *Session) Delay() time.Duration { return s.loop.Delay() }

// Play starts or resumes stepping.
func (s *Session) Play() error {
	if s.mode != ModeReady && s.mode != ModePaused {
		return fmt.Errorf("play while %s: %w", s.mode, ErrNotAllowed)
	}
	s.mode = ModePlaying
	s.loop.Play()
	return nil
}

// Pause holds a playing game.
func (s *Session) Pause() error {
	if s.mode != ModePlaying {
		return fmt.Errorf("pause while %s: %w", s.mode, ErrNotAllowed)
	}
	s.loop.Pause()
	s.mode = ModePaused
	return nil
}

// TogglePlay plays a held game and pauses a playing one.
func (s *Session) TogglePlay() error {
	if s.mode == ModePlaying {
		return s.Pause()
	}
	return s.Play()
}

// StepOnce advances a held game by a single generation.
func (s *Session) StepOnce() error {
	if s.mode != ModeReady && s.mode != ModePaused {
		return fmt.Errorf("step while %s: %w", s.mode, ErrNotAllowed)
	}
	s.mode = ModePaused
	s.step()
	return nil
}

// Update steps the game when the loop says a generation is due. It reports
// whether a step happened.
func (s *Session) Update(now time.Time) bool {
	if s.mode != ModePlaying || !s.loop.Tick(now) {
		return false
	}
	s.step()
	return true
}

func (s *Session) step() {
	if _, ok := s.game.Step(); !ok {
		return
	}
	if s.game.Finished() {
		s.sawPeriodic = s.sawPeriodic || s.game.Periodic()
		s.loop.Pause()
		s.mode = ModeOver
		s.prompt = Prompt{Kind: PromptFinished, Message: s.game.FinishReason()}
		s.logger.Printf("game finished: %s", s.game.FinishReason())
		return
	}
	if s.game.Periodic() && !s.sawPeriodic {
		s.sawPeriodic = true
		s.loop.Pause()
		s.mode = ModePaused
		s.prompt = Prompt{Kind: PromptPeriodic, Message: s.game.PeriodicInfo()}
		s.logger.Printf("game repeats: %s", s.game.PeriodicInfo())
	}
}

// Answer resolves a pending prompt. For a periodic prompt yes keeps playing
// and no ends the game; a finished notice is dismissed either way.
func (s *Session) Answer(yes bool) error {
	switch s.prompt.Kind {
	case PromptPeriodic:
		s.prompt = Prompt{}
		if yes {
			return s.Play()
		}
		s.mode = ModeOver
		return nil
	case PromptFinished:
		s.prompt = Prompt{}
		return nil
	default:
		return fmt.Errorf("answer without a prompt: %w", ErrNotAllowed)
	}
}

// Toggle flips a cell. Editing is allowed in every mode.
func (s *Session) Toggle(row, col int) error {
	return s.game.Toggle(row, col)
}

// Clear stops the game and empties the board.
func (s *Session) Clear() error {
	if s.mode == ModePlaying {
		return fmt.Errorf("clear while %s: %w", s.mode, ErrNotAllowed)
	}
	s.game.Clear()
	s.reset()
	return nil
}

// Replace swaps in a new game, for example a random board.
func (s *Session) Replace(game *life.Game) error {
	if s.mode == ModePlaying {
		return fmt.Errorf("replace while %s: %w", s.mode, ErrNotAllowed)
	}
	s.game = game
	s.reset()
	return nil
}

func (s *Session) reset() {
	s.loop.Pause()
	s.mode = ModeReady
	s.prompt = Prompt{}
	s.sawPeriodic = s.game.Periodic()
}

// Save stores the game under name. Only started games can be saved.
func (s *Session) Save(ctx context.Context, name string) error {
	if s.mode != ModePaused && s.mode != ModeOver {
		return fmt.Errorf("save while %s: %w", s.mode, ErrNotAllowed)
	}
	if s.store == nil {
		return errors.New("no store configured")
	}
	rec := life.NewRecord(name, s.game)
	if err := s.store.Save(ctx, rec); err != nil {
		return fmt.Errorf("save %q: %w", rec.Name, err)
	}
	s.logger.Printf("saved %q at generation %d", rec.Name, rec.Age)
	return nil
}

// Load replaces the game with the saved one. The current game is kept when
// the record cannot be read or restored.
func (s *Session) Load(ctx context.Context, name string) error {
	if s.mode != ModeReady {
		return fmt.Errorf("load while %s: %w", s.mode, ErrNotAllowed)
	}
	if s.store == nil {
		return errors.New("no store configured")
	}
	rec, err := s.store.Load(ctx, name)
	if err != nil {
		return err
	}
	game, err := life.FromRecord(rec, s.game.Size())
	if err != nil {
		return fmt.Errorf("restore %q: %w", name, err)
	}
	s.game = game
	s.reset()
	s.logger.Printf("loaded %q at generation %d", rec.Name, rec.Age)
	return nil
}

// List summarises the saved games.
func (s *Session) List(ctx context.Context) ([]store.Summary, error) {
	if s.store == nil {
		return nil, errors.New("no store configured")
	}
	return s.store.List(ctx)
}

// Parameters reports the values shown on the HUD.
func (s *Session) Parameters() core.ParameterSnapshot {
	status := "running"
	if s.game.Finished() {
		status = s.game.FinishReason()
	}
	cycle := "none"
	if s.game.Periodic() {
		cycle = s.game.PeriodicInfo()
	}
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				{Key: "w", Label: "Width", Type: core.ParamTypeInt, Value: strconv.Itoa(s.game.Width())},
				{Key: "h", Label: "Height", Type: core.ParamTypeInt, Value: strconv.Itoa(s.game.Height())},
				{Key: "alive", Label: "Alive", Type: core.ParamTypeInt, Value: strconv.Itoa(s.game.Current().Alive())},
			},
		},
		{
			Name: "Game",
			Params: []core.Parameter{
				{Key: "age", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.Itoa(s.game.Age())},
				{Key: "mode", Label: "Mode", Type: core.ParamTypeText, Value: s.mode.String()},
				{Key: "status", Label: "Status", Type: core.ParamTypeText, Value: status},
				{Key: "cycle", Label: "Cycle", Type: core.ParamTypeText, Value: cycle},
			},
		},
		{
			Name: "Loop",
			Params: []core.Parameter{
				{Key: delayKey, Label: delayControl.Label, Type: core.ParamTypeInt, Value: strconv.Itoa(int(s.loop.Delay() / time.Millisecond))},
			},
		},
	}}
	if s.prompt.Kind != PromptNone {
		hint := "press y to dismiss"
		if s.prompt.Kind == PromptPeriodic {
			hint = "continue? (y/n)"
		}
		snap.Groups = append(snap.Groups, core.ParameterGroup{
			Name: "Notice",
			Params: []core.Parameter{
				{Key: "prompt", Label: "Message", Type: core.ParamTypeText, Value: s.prompt.Message},
				{Key: "answer", Label: "Answer", Type: core.ParamTypeText, Value: hint},
			},
		})
	}
	return snap
}

// ParameterControls lists the HUD-adjustable values.
func (s *Session) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{delayControl}
}

// SetIntParameter updates an adjustable value. It reports false for unknown
// keys.
func (s *Session) SetIntParameter(key string, value int) bool {
	if key != delayKey {
		return false
	}
	ms := int(delayControl.Clamp(float64(value)))
	s.loop.SetDelay(time.Duration(ms) * time.Millisecond)
	return true
}

// AdjustDelay moves the delay by dir control steps.
func (s *Session) AdjustDelay(dir int) {
	cur := float64(s.loop.Delay() / time.Millisecond)
	s.SetIntParameter(delayKey, int(delayControl.Adjust(cur, dir)))
}
