// The tui subcommand is the interactive form front-end: two text inputs, a
// progress spinner while one background command runs the whole pipeline, and
// three tabbed scrollable panes for the result. The pipeline runs exactly
// once per start and delivers a single summaryMsg; there is no cancellation
// and no incremental per-section update.
package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mitchellh/go-wordwrap"
	"github.com/spf13/cobra"

	"github.com/iWorld-y/company_radar/pkg/model"
	"github.com/iWorld-y/company_radar/pkg/summarize"
)

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "대화형 화면에서 회사 정보를 요약합니다",
		RunE: func(cmd *cobra.Command, _ []string) error {
			summarizer, err := setup(cmd)
			if err != nil {
				return err
			}
			p := tea.NewProgram(newFormModel(cmd.Context(), summarizer), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
}

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).Padding(0, 1)
	labelStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Italic(true)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("63")).Padding(0, 2)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 2)
	paneStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("63")).Padding(0, 1)
)

// summaryMsg carries the complete pipeline result back into the UI loop.
type summaryMsg struct {
	result model.CompanySummaryResult
	err    error
}

type formModel struct {
	ctx        context.Context
	summarizer *summarize.CompanySummarizer

	inputs [2]textinput.Model
	focus  int

	spinner spinner.Model
	running bool
	done    bool
	status  string

	tabs      []string
	activeTab int
	viewports [3]viewport.Model

	width  int
	height int
	ready  bool
}

func newFormModel(ctx context.Context, summarizer *summarize.CompanySummarizer) formModel {
	name := textinput.New()
	name.Placeholder = "회사 이름 (필수)"
	name.CharLimit = 100
	name.Width = 50
	name.Focus()

	url := textinput.New()
	url.Placeholder = "회사 홈페이지 URL (선택)"
	url.CharLimit = 200
	url.Width = 50

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))

	return formModel{
		ctx:        ctx,
		summarizer: summarizer,
		inputs:     [2]textinput.Model{name, url},
		spinner:    sp,
		status:     "대기 중...",
		tabs:       []string{"회사 개요", "인재상", "최근 비전"},
	}
}

func (m formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		paneHeight := m.height - 12
		if paneHeight < 5 {
			paneHeight = 5
		}
		for i := range m.viewports {
			if !m.ready {
				m.viewports[i] = viewport.New(m.width-6, paneHeight)
			} else {
				m.viewports[i].Width = m.width - 6
				m.viewports[i].Height = paneHeight
			}
		}
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "shift+tab":
			m.focus = (m.focus + 1) % len(m.inputs)
			for i := range m.inputs {
				if i == m.focus {
					m.inputs[i].Focus()
				} else {
					m.inputs[i].Blur()
				}
			}
			return m, nil
		case "left":
			if m.done && m.activeTab > 0 {
				m.activeTab--
			}
			return m, nil
		case "right":
			if m.done && m.activeTab < len(m.tabs)-1 {
				m.activeTab++
			}
			return m, nil
		case "enter":
			if m.running {
				return m, nil
			}
			companyName := strings.TrimSpace(m.inputs[0].Value())
			if companyName == "" {
				m.status = "회사 이름을 입력해주세요."
				return m, nil
			}
			companyURL := strings.TrimSpace(m.inputs[1].Value())
			m.running = true
			m.done = false
			m.status = "분석 중..."
			return m, tea.Batch(m.spinner.Tick, m.startAnalysis(companyName, companyURL))
		}

	case spinner.TickMsg:
		if !m.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case summaryMsg:
		m.running = false
		if msg.err != nil {
			m.status = fmt.Sprintf("오류 발생: %v", msg.err)
			return m, nil
		}
		m.done = true
		m.status = "완료!"
		wrap := uint(80)
		if m.width > 28 {
			wrap = uint(m.width - 8)
		}
		sections := []string{msg.result.Overview, msg.result.TalentProfile, msg.result.RecentVision}
		for i, content := range sections {
			m.viewports[i].SetContent(wordwrap.WrapString(content, wrap))
			m.viewports[i].GotoTop()
		}
		return m, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	cmds = append(cmds, cmd)
	if m.done {
		m.viewports[m.activeTab], cmd = m.viewports[m.activeTab].Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// startAnalysis offloads the blocking pipeline to a single background
// command so the UI loop stays responsive.
func (m formModel) startAnalysis(companyName, companyURL string) tea.Cmd {
	return func() tea.Msg {
		result, err := m.summarizer.Summarize(m.ctx, companyName, companyURL)
		return summaryMsg{result: result, err: err}
	}
}

func (m formModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("회사 정보 자동 요약 도구"))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("회사 이름:     ") + m.inputs[0].View() + "\n")
	b.WriteString(labelStyle.Render("홈페이지(선택): ") + m.inputs[1].View() + "\n\n")

	if m.running {
		b.WriteString(m.spinner.View() + " " + statusStyle.Render(m.status))
	} else {
		b.WriteString(statusStyle.Render(m.status + "  (Enter: 분석 시작 / Tab: 입력 전환 / Esc: 종료)"))
	}
	b.WriteString("\n\n")

	if m.done && m.ready {
		var tabs []string
		for i, name := range m.tabs {
			if i == m.activeTab {
				tabs = append(tabs, activeTabStyle.Render(name))
			} else {
				tabs = append(tabs, inactiveTabStyle.Render(name))
			}
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
		b.WriteString("\n")
		b.WriteString(paneStyle.Render(m.viewports[m.activeTab].View()))
		b.WriteString("\n")
		b.WriteString(statusStyle.Render("←/→: 탭 전환, ↑/↓: 스크롤"))
	}

	return b.String()
}
