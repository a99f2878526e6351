package ui

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"

	"StudyPlanner/internal/config"
	"StudyPlanner/internal/planner"
)

// TimerView is a countdown study timer. When it runs out the elapsed
// time is logged as a study session and a notification sound plays.
type TimerView struct {
	container       *fyne.Container
	store           *planner.Store
	cfg             config.TimerConfig
	onSessionLogged func()

	subjectEntry *widget.Entry
	minutesEntry *widget.Entry
	timeLabel    *canvas.Text
	statusLabel  *widget.Label
	startBtn     *widget.Button
	resetBtn     *widget.Button

	running        bool
	plannedMinutes int
	remaining      time.Duration
	stop           chan struct{}
}

func NewTimerView(store *planner.Store, cfg config.TimerConfig, onSessionLogged func()) *TimerView {
	v := &TimerView{
		store:           store,
		cfg:             cfg,
		onSessionLogged: onSessionLogged,
	}
	v.setup()
	return v
}

func (v *TimerView) setup() {
	title := widget.NewLabelWithStyle("Study Timer", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	v.subjectEntry = widget.NewEntry()
	v.subjectEntry.SetPlaceHolder("Subject (optional)")

	v.minutesEntry = widget.NewEntry()
	v.minutesEntry.SetText(strconv.Itoa(v.cfg.DefaultMinutes))

	v.timeLabel = canvas.NewText(formatCountdown(time.Duration(v.cfg.DefaultMinutes)*time.Minute), color.NRGBA{R: 64, G: 64, B: 64, A: 255})
	v.timeLabel.TextSize = 48
	v.timeLabel.Alignment = fyne.TextAlignCenter

	v.statusLabel = widget.NewLabelWithStyle("Ready", fyne.TextAlignCenter, fyne.TextStyle{})

	v.startBtn = widget.NewButtonWithIcon("Start", theme.MediaPlayIcon(), v.onStartClicked)
	v.resetBtn = widget.NewButtonWithIcon("Reset", theme.MediaStopIcon(), v.reset)

	form := container.NewGridWithColumns(2,
		widget.NewLabel("Subject:"), v.subjectEntry,
		widget.NewLabel("Minutes:"), v.minutesEntry,
	)

	v.container = container.NewVBox(
		title,
		form,
		v.timeLabel,
		v.statusLabel,
		container.NewHBox(v.startBtn, v.resetBtn),
	)
}

func (v *TimerView) onStartClicked() {
	if v.running {
		v.pause()
		return
	}

	if v.remaining <= 0 {
		minutes, err := strconv.Atoi(v.minutesEntry.Text)
		if err != nil || minutes <= 0 {
			v.statusLabel.SetText("Enter a positive number of minutes")
			return
		}
		v.plannedMinutes = minutes
		v.remaining = time.Duration(minutes) * time.Minute
	}

	v.running = true
	v.stop = make(chan struct{})
	v.startBtn.SetText("Pause")
	v.startBtn.SetIcon(theme.MediaPauseIcon())
	v.statusLabel.SetText("Studying...")
	go v.run(v.stop)
}

func (v *TimerView) pause() {
	v.running = false
	close(v.stop)
	v.startBtn.SetText("Start")
	v.startBtn.SetIcon(theme.MediaPlayIcon())
	v.statusLabel.SetText("Paused")
}

func (v *TimerView) reset() {
	if v.running {
		v.pause()
	}
	v.remaining = 0
	minutes, err := strconv.Atoi(v.minutesEntry.Text)
	if err != nil || minutes <= 0 {
		minutes = v.cfg.DefaultMinutes
	}
	v.updateClock(time.Duration(minutes) * time.Minute)
	v.statusLabel.SetText("Ready")
}

func (v *TimerView) run(stop chan struct{}) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			v.remaining -= time.Second
			if v.remaining <= 0 {
				v.complete()
				return
			}
			v.updateClock(v.remaining)
		}
	}
}

func (v *TimerView) complete() {
	v.running = false
	v.remaining = 0
	v.updateClock(0)

	_, err := v.store.AddStudySession(v.plannedMinutes, v.subjectEntry.Text)
	if err != nil {
		v.statusLabel.SetText(err.Error())
	} else {
		v.statusLabel.SetText(fmt.Sprintf("Session logged: %d min", v.plannedMinutes))
	}

	v.startBtn.SetText("Start")
	v.startBtn.SetIcon(theme.MediaPlayIcon())

	if v.cfg.NotificationSound {
		playNotification(v.cfg.SoundFile)
	}
	if v.onSessionLogged != nil {
		v.onSessionLogged()
	}
}

func (v *TimerView) updateClock(remaining time.Duration) {
	v.timeLabel.Text = formatCountdown(remaining)
	v.timeLabel.Refresh()
}

func formatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

var (
	audioOnce   sync.Once
	soundBuffer *beep.Buffer
)

// playNotification plays the configured wav once. Missing or broken
// sound files are ignored; the session is already logged by then.
func playNotification(path string) {
	audioOnce.Do(func() {
		f, err := os.Open(path)
		if err != nil {
			return
		}
		defer f.Close()

		streamer, format, err := wav.Decode(f)
		if err != nil {
			return
		}
		defer streamer.Close()

		if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
			return
		}

		buffer := beep.NewBuffer(format)
		buffer.Append(streamer)
		soundBuffer = buffer
	})

	if soundBuffer == nil {
		return
	}

	volumeCtrl := &effects.Volume{
		Streamer: soundBuffer.Streamer(0, soundBuffer.Len()),
		Base:     2,
		Volume:   0,
		Silent:   false,
	}
	speaker.Play(volumeCtrl)
}
