// Command collide-sandbox steers one circle through a level in the terminal and shows its contacts.
//
// Everything on screen goes through display-only float conversions; the simulation itself stays
// in the fixed domain.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/fixphys/config"
	"github.com/lixenwraith/fixphys/level"
	"github.com/lixenwraith/fixphys/logging"
	"github.com/lixenwraith/fixphys/physics"
	"github.com/lixenwraith/fixphys/sim"
	"github.com/lixenwraith/fixphys/vmath"
)

const (
	normalLength  = 3 // cells
	sampleRate    = beep.SampleRate(44100)
	contactToneHz = 880
	wedgeToneHz   = 220
)

var (
	styleStatic  = tcell.StyleDefault.Foreground(tcell.ColorSteelBlue)
	styleMover   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleWedged  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleNormal  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleStatus  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true)
	defaultSpawn = level.SpawnState{Radius: vmath.FromFloat(0.5)}
)

type Sandbox struct {
	screen        tcell.Screen
	width, height int

	cfg     *config.Config
	lvl     *level.Level
	spawn   level.SpawnState
	statics []*physics.Collider
	world   *sim.World
	mover   int

	speed vmath.Fixed // Steering speed, units per second
	last  sim.Sample

	audioInit bool
}

func NewSandbox(cfg *config.Config, lvl *level.Level) (*Sandbox, error) {
	statics, err := lvl.Statics()
	if err != nil {
		return nil, err
	}
	spawns, err := lvl.SpawnStates()
	if err != nil {
		return nil, err
	}

	sb := &Sandbox{
		cfg:     cfg,
		lvl:     lvl,
		spawn:   defaultSpawn,
		statics: statics,
		speed:   vmath.FromFloat(cfg.Sandbox.Speed),
	}
	if len(spawns) > 0 {
		sb.spawn = spawns[0]
	}
	sb.reset()

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.HideCursor()
	sb.screen = screen
	sb.width, sb.height = screen.Size()

	if cfg.Sandbox.Sound {
		if err := sb.initAudio(); err != nil {
			log.Printf("Audio initialization failed: %v", err)
		}
	}
	return sb, nil
}

// reset rebuilds the world with the mover back at its spawn point
func (sb *Sandbox) reset() {
	resolver := physics.NewResolver(sb.cfg.Engine.TickDuration())
	resolver.Debug = sb.cfg.Engine.Debug
	sb.world = sim.NewWorld(sb.statics, resolver)
	sb.mover = sb.world.Spawn(sb.spawn.Position, sb.spawn.Radius, vmath.V3Zero)
	sb.last = sim.Sample{Mover: sb.mover, Position: sb.spawn.Position}
}

func (sb *Sandbox) initAudio() error {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	sb.audioInit = true
	return nil
}

func (sb *Sandbox) playTone(hz float64, d time.Duration) {
	if !sb.audioInit {
		return
	}
	sine, err := generators.SineTone(sampleRate, hz)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

// steer sets the mover's intent to a unit direction at the configured speed
func (sb *Sandbox) steer(dir vmath.Vec3) {
	sb.world.SetIntent(sb.mover, vmath.V3Scale(dir, sb.speed))
}

func (sb *Sandbox) step() {
	prev := sb.last
	sb.last = sb.world.Step()[sb.mover]

	switch {
	case sb.last.Wedged && !prev.Wedged:
		log.Printf("sandbox: wedged at %v", sb.last.Position)
		sb.playTone(wedgeToneHz, 80*time.Millisecond)
	case len(sb.last.Hits) > 0 && len(prev.Hits) == 0:
		sb.playTone(contactToneHz, 30*time.Millisecond)
	}
}

// toScreen maps a world point on the ground plane to a cell, camera centered on the mover
// Terminal cells are about twice as tall as wide, so x gets two columns per row
func (sb *Sandbox) toScreen(p, camera vmath.Vec3F) (int, int) {
	k := float64(sb.cfg.Sandbox.CellsPerUnit)
	x := sb.width/2 + int(math.Round((p.X-camera.X)*k*2))
	y := sb.height/2 - int(math.Round((p.Z-camera.Z)*k))
	return x, y
}

// toWorld maps a cell center back to the ground plane
func (sb *Sandbox) toWorld(x, y int, camera vmath.Vec3F) vmath.Vec3F {
	k := float64(sb.cfg.Sandbox.CellsPerUnit)
	return vmath.Vec3F{
		X: camera.X + float64(x-sb.width/2)/(k*2),
		Z: camera.Z - float64(y-sb.height/2)/k,
	}
}

func covers(c *physics.Collider, p vmath.Vec3F) bool {
	d := vmath.V3FSub(p, vmath.V3ToFloat(c.Position))
	if c.Kind == physics.ShapeCircle {
		return vmath.V3FMag(d) <= c.Radius().Float()
	}
	u, v := c.Axes()
	hu, hv := c.HalfExtents()
	return math.Abs(vmath.V3FDot(d, vmath.V3ToFloat(u))) <= hu.Float() &&
		math.Abs(vmath.V3FDot(d, vmath.V3ToFloat(v))) <= hv.Float()
}

func (sb *Sandbox) draw() {
	sb.screen.Clear()

	mover := sb.world.Mover(sb.mover)
	camera := vmath.V3ToFloat(mover.Position)
	radius := mover.Radius().Float()
	viewRadius := float64(sb.width+sb.height) / float64(sb.cfg.Sandbox.CellsPerUnit)

	visible := make([]*physics.Collider, 0, len(sb.statics))
	for _, c := range sb.statics {
		d := vmath.V3ToFloat(vmath.V3Sub(c.Position, mover.Position))
		if vmath.V3FMag(d)-c.Bounds().Float() <= viewRadius {
			visible = append(visible, c)
		}
	}

	moverStyle := styleMover
	if sb.last.Wedged {
		moverStyle = styleWedged
	}

	for y := 0; y < sb.height-1; y++ {
		for x := 0; x < sb.width; x++ {
			p := sb.toWorld(x, y, camera)
			if math.Hypot(p.X-camera.X, p.Z-camera.Z) <= radius {
				sb.screen.SetContent(x, y, 'O', nil, moverStyle)
				continue
			}
			for _, c := range visible {
				if covers(c, p) {
					sb.screen.SetContent(x, y, '█', nil, styleStatic)
					break
				}
			}
		}
	}

	for _, hit := range sb.last.Hits {
		n := vmath.V3ToFloat(hit.Normal)
		for i := 1; i <= normalLength; i++ {
			step := float64(i) / float64(sb.cfg.Sandbox.CellsPerUnit)
			p := vmath.Vec3F{X: camera.X - n.X*(radius+step), Z: camera.Z - n.Z*(radius+step)}
			x, y := sb.toScreen(p, camera)
			r := '·'
			if i == normalLength {
				r = '*'
			}
			sb.screen.SetContent(x, y, r, nil, styleNormal)
		}
	}

	sb.drawStatus()
	sb.screen.Show()
}

func (sb *Sandbox) drawStatus() {
	s := sb.last
	status := fmt.Sprintf(" %s  tick %d  pos %v  vel %v  contacts %d", sb.lvl.Name, s.Tick, s.Position, s.Velocity, len(s.Hits))
	if s.Wedged {
		status += "  WEDGED"
	}
	status += "  [arrows/wasd steer, space stop, r reset, q quit] "

	y := sb.height - 1
	x := 0
	for _, r := range status {
		if x >= sb.width {
			break
		}
		sb.screen.SetContent(x, y, r, nil, styleStatus)
		x++
	}
	for ; x < sb.width; x++ {
		sb.screen.SetContent(x, y, ' ', nil, styleStatus)
	}
}

func (sb *Sandbox) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			sb.steer(vmath.V3(-vmath.One, 0, 0))
		case tcell.KeyRight:
			sb.steer(vmath.V3(vmath.One, 0, 0))
		case tcell.KeyUp:
			sb.steer(vmath.V3(0, 0, vmath.One))
		case tcell.KeyDown:
			sb.steer(vmath.V3(0, 0, -vmath.One))
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'a':
				sb.steer(vmath.V3(-vmath.One, 0, 0))
			case 'd':
				sb.steer(vmath.V3(vmath.One, 0, 0))
			case 'w':
				sb.steer(vmath.V3(0, 0, vmath.One))
			case 's':
				sb.steer(vmath.V3(0, 0, -vmath.One))
			case ' ':
				sb.steer(vmath.V3Zero)
			case 'r':
				sb.reset()
			}
		}

	case *tcell.EventResize:
		sb.width, sb.height = sb.screen.Size()
		sb.screen.Sync()
	}

	return true
}

func (sb *Sandbox) run() {
	ticker := time.NewTicker(time.Second / time.Duration(sb.cfg.Engine.TickRate))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- sb.screen.PollEvent()
		}
	}()

	sb.draw()
	for {
		select {
		case ev := <-eventChan:
			if ev == nil {
				return
			}
			if !sb.handleInput(ev) {
				return
			}

		case <-ticker.C:
			sb.step()
			sb.draw()
		}
	}
}

func (sb *Sandbox) cleanup() {
	if sb.audioInit {
		speaker.Close()
	}
	sb.screen.Fini()
}

func main() {
	levelPath := flag.String("level", "", "Level file (.toml, .yaml)")
	configPath := flag.String("config", "", "Config file (empty = embedded defaults)")
	flag.Parse()

	if *levelPath == "" {
		fmt.Fprintln(os.Stderr, "usage: collide-sandbox -level L [-config C]")
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if logFile := logging.Setup(cfg.Engine.Debug, "collide-sandbox"); logFile != nil {
		defer logFile.Close()
	}

	lvl, err := level.Load(*levelPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load level: %v\n", err)
		os.Exit(1)
	}

	sb, err := NewSandbox(cfg, lvl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before printing
	defer func() {
		if r := recover(); r != nil {
			sb.screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mCOLLIDE-SANDBOX CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer sb.cleanup()

	sb.run()
}
