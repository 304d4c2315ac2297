package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the browser's key bindings.
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	Back      key.Binding
	Search    key.Binding
	NextPane  key.Binding
	LoadMore  key.Binding
	AddCart   key.Binding
	CartPanel key.Binding
	Download  key.Binding
	PlayPause key.Binding
	NextTrack key.Binding
	PrevTrack key.Binding
	Mute      key.Binding
	VolumeUp  key.Binding
	VolumeDn  key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Search:    key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		NextPane:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
		LoadMore:  key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "load more")),
		AddCart:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add to cart")),
		CartPanel: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cart panel")),
		Download:  key.NewBinding(key.WithKeys("Z"), key.WithHelp("Z", "download zip")),
		PlayPause: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play/pause")),
		NextTrack: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next track")),
		PrevTrack: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "prev track")),
		Mute:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mute")),
		VolumeUp:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "volume up")),
		VolumeDn:  key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "volume down")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Search, k.AddCart, k.CartPanel, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Back, k.NextPane},
		{k.Search, k.LoadMore, k.AddCart, k.CartPanel, k.Download},
		{k.PlayPause, k.NextTrack, k.PrevTrack, k.Mute, k.VolumeUp, k.VolumeDn},
		{k.Help, k.Quit},
	}
}
