package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/SeamusWaldron/cubedojo/internal/storage"
	"github.com/SeamusWaldron/cubedojo/pkg/drill"
)

// question is one round presented by the quiz.
type question struct {
	category string // statistics bucket, e.g. edge kind or level
	prompt   string
	cube     string        // rendered net, may be empty
	flash    time.Duration // when set, the cube is shown only this long
	hint     string
	grade    func(answer string) (verdict, error)
}

// verdict is the grading of one answer.
type verdict struct {
	correct  bool
	feedback string
}

// questionSource produces the next round.
type questionSource func() (question, error)

type quizPhase int

const (
	phaseFlash quizPhase = iota
	phaseAnswer
	phaseFeedback
)

// Messages
type flashDoneMsg struct{ round int }

// quizModel runs a drill as a question, answer and feedback loop.
type quizModel struct {
	kind   drill.Kind
	next   questionSource
	record func(storage.Attempt) error
	now    func() time.Time

	q     question
	round int
	phase quizPhase
	input textinput.Model
	asked time.Time
	last  verdict

	total   int
	correct int
	streak  int

	inputErr error
	err      error
	quitting bool
}

func newQuizModel(kind drill.Kind, next questionSource, record func(storage.Attempt) error) *quizModel {
	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 200
	input.Focus()

	return &quizModel{
		kind:   kind,
		next:   next,
		record: record,
		now:    time.Now,
		input:  input,
	}
}

func (m *quizModel) Init() tea.Cmd {
	return tea.Batch(m.advance(), textinput.Blink)
}

// advance loads the next question, starting the flash timer when needed.
func (m *quizModel) advance() tea.Cmd {
	q, err := m.next()
	if err != nil {
		m.err = err
		return tea.Quit
	}

	m.q = q
	m.round++
	m.input.Reset()
	m.inputErr = nil
	m.asked = m.now()

	if q.flash > 0 {
		m.phase = phaseFlash
		round := m.round
		return tea.Tick(q.flash, func(time.Time) tea.Msg {
			return flashDoneMsg{round: round}
		})
	}
	m.phase = phaseAnswer
	return nil
}

func (m *quizModel) endFlash() {
	m.phase = phaseAnswer
	m.asked = m.now()
}

func (m *quizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case flashDoneMsg:
		// Ticks from a flash the player already skipped are stale.
		if msg.round == m.round && m.phase == phaseFlash {
			m.endFlash()
		}

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		}

		switch m.phase {
		case phaseFlash:
			if msg.Type == tea.KeyEnter {
				m.endFlash()
			}

		case phaseAnswer:
			if msg.Type == tea.KeyEnter {
				m.submit()
				return m, nil
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd

		case phaseFeedback:
			switch msg.String() {
			case "q":
				m.quitting = true
				return m, tea.Quit
			case "enter", " ", "n":
				return m, m.advance()
			}
		}

	default:
		// Cursor blinks and other widget messages.
		if m.phase == phaseAnswer {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// submit grades the typed answer. Answers that cannot be parsed are
// reported without counting as an attempt.
func (m *quizModel) submit() {
	answer := strings.TrimSpace(m.input.Value())
	if answer == "" {
		return
	}

	v, err := m.q.grade(answer)
	if err != nil {
		m.inputErr = err
		return
	}
	m.inputErr = nil
	elapsed := m.now().Sub(m.asked)

	m.total++
	if v.correct {
		m.correct++
		m.streak++
	} else {
		m.streak = 0
	}
	m.last = v
	m.phase = phaseFeedback

	if m.record != nil {
		err := m.record(storage.Attempt{
			Drill:      string(m.kind),
			Category:   m.q.category,
			Correct:    v.correct,
			ResponseMs: elapsed.Milliseconds(),
			Prompt:     m.q.prompt,
			Answer:     answer,
		})
		if err != nil {
			m.err = err
		}
	}
}

func (m *quizModel) View() string {
	if m.quitting {
		return m.summary() + "\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(m.kind.DisplayName()))
	b.WriteString("  ")
	b.WriteString(statusStyle.Render(m.scoreLine()))
	b.WriteString("\n\n")

	if m.q.cube != "" && (m.phase != phaseAnswer || m.q.flash == 0) {
		b.WriteString(m.q.cube)
		b.WriteString("\n")
	}

	if m.phase == phaseFlash {
		b.WriteString(promptStyle.Render("Memorize the cube..."))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter=ready  esc=quit"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(promptStyle.Render(m.q.prompt))
	b.WriteString("\n")
	if m.q.hint != "" {
		b.WriteString(helpStyle.Render(m.q.hint))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	if m.phase == phaseAnswer {
		b.WriteString(m.input.View())
	} else {
		b.WriteString("> " + m.input.Value())
	}
	b.WriteString("\n")

	if m.inputErr != nil {
		b.WriteString(errorStyle.Render(m.inputErr.Error()))
		b.WriteString("\n")
	}

	if m.phase == phaseFeedback {
		b.WriteString("\n")
		if m.last.correct {
			b.WriteString(correctStyle.Render("Correct!"))
		} else {
			b.WriteString(errorStyle.Render("Wrong."))
		}
		if m.last.feedback != "" {
			b.WriteString(" ")
			b.WriteString(m.last.feedback)
		}
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := "enter=submit  esc=quit"
	if m.phase == phaseFeedback {
		help = "enter=next  q=quit"
	}
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")

	return b.String()
}

func (m *quizModel) scoreLine() string {
	return fmt.Sprintf("%d/%d correct  streak %d", m.correct, m.total, m.streak)
}

func (m *quizModel) summary() string {
	if m.total == 0 {
		return "No rounds answered."
	}
	return fmt.Sprintf("%s: %d/%d correct (%.0f%%)", m.kind.DisplayName(), m.correct, m.total,
		100*float64(m.correct)/float64(m.total))
}
