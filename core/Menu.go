package core

// MenuOption 選單上的一個對手 AI 描述
//
// 目前所有選項的實際行為都相同（左右來回 + 固定間隔射擊），
// 選單只決定顯示與紀錄用的標籤。
type MenuOption struct {
	Label       string
	Description string
}

// RuleBased 是唯一真正實作的行為
const RuleBased = "Rule-Based (Constant Movement)"

var OpponentBehaviors = []MenuOption{
	{
		Label:       RuleBased,
		Description: "The opponent sweeps left and right at a constant speed, reversing at the screen edges, and fires straight down once every second.",
	},
	{
		Label:       "Reinforcement Learning (Q-Learning)",
		Description: "An agent that learns which moves avoid your shots by rewarding survival. Not trained yet: the opponent falls back to constant movement.",
	},
	{
		Label:       "Genetic Algorithm",
		Description: "A population of movement patterns evolved over many rounds, keeping the ones that last longest. Not evolved yet: the opponent falls back to constant movement.",
	},
	{
		Label:       "Neural Network (Pre-Trained)",
		Description: "A small network that maps your position and shots to a dodge direction. No weights ship with the game: the opponent falls back to constant movement.",
	},
	{
		Label:       "Simple Heuristic (Predictive)",
		Description: "Predicts where your shots will cross its row and steps out of the way. Not wired in yet: the opponent falls back to constant movement.",
	},
}

type MenuMode int

const (
	MenuBrowsing MenuMode = iota
	MenuShowingDescription
)

type Menu struct {
	Options  []MenuOption
	Index    int
	Mode     MenuMode
	Describe bool // true 時確認前先顯示描述
}

func NewMenu(options []MenuOption, describe bool) *Menu {
	return &Menu{
		Options:  options,
		Describe: describe,
	}
}

func (m *Menu) Up() {
	if m.Mode != MenuBrowsing || len(m.Options) == 0 {
		return
	}
	m.Index = (m.Index - 1 + len(m.Options)) % len(m.Options)
}

func (m *Menu) Down() {
	if m.Mode != MenuBrowsing || len(m.Options) == 0 {
		return
	}
	m.Index = (m.Index + 1) % len(m.Options)
}

// Confirm 回傳 true 代表選擇已確定，可以開始遊戲
func (m *Menu) Confirm() bool {
	if len(m.Options) == 0 {
		return false
	}
	if m.Describe && m.Mode == MenuBrowsing {
		m.Mode = MenuShowingDescription
		return false
	}
	m.Mode = MenuBrowsing
	return true
}

// Back leaves the description panel without committing.
func (m *Menu) Back() {
	m.Mode = MenuBrowsing
}

func (m *Menu) Highlighted() MenuOption {
	return m.Options[m.Index]
}
