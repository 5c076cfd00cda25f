package ui

import (
	"bytes"
	"image"
	"image/color"
	"log"
	"math"
	"strings"

	"github.com/automoto/durhamtour/assets"
	cfg "github.com/automoto/durhamtour/config"
	"github.com/automoto/durhamtour/dialogue"
	"github.com/ebitenui/ebitenui"
	uiimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	panelWidth   = 560
	panelImageW  = 240
	legendIconW  = 32
	stripPadding = 10
)

// pendingGraphic is a widget waiting for its image to finish loading.
type pendingGraphic struct {
	handle  *assets.Handle
	graphic *widget.Graphic
	width   float64
}

// DialogueUI is the ebitenui dialogue surface: a prompt strip along the
// bottom edge and a location panel opened on demand.
type DialogueUI struct {
	UI       *ebitenui.UI
	Provider *assets.Provider

	// OpenURL is called by the panel's link button. Defaults to logging the URL.
	OpenURL func(url string)

	root  *widget.Container
	strip *widget.Container
	panel *widget.Container

	// Prompt strip
	bust         *widget.Graphic
	promptText   *widget.Text
	promptColumn *widget.Container
	actionButton *widget.Button
	actionShown  bool

	// Location panel
	titleLabel   *widget.Text
	image        *widget.Graphic
	addressText  *widget.Text
	iconRow      *widget.Container
	previewText  *widget.Text
	toggleButton *widget.Button
	previewRow   *widget.Container
	toggleShown  bool
	linkButton   *widget.Button
	content      dialogue.LocationContent
	panelOpen    bool

	pending []pendingGraphic
	events  []dialogue.Event

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

var _ dialogue.Presenter = (*DialogueUI)(nil)

// NewDialogueUI builds the overlay. bust may be nil or still loading.
func NewDialogueUI(provider *assets.Provider, bust *assets.Handle, bustWidth float64) *DialogueUI {
	dui := &DialogueUI{
		Provider: provider,
		OpenURL: func(url string) {
			log.Printf("Opening %s", url)
		},
	}

	dui.loadFonts()
	dui.buildUI()
	if bust != nil {
		dui.watch(bust, dui.bust, bustWidth)
	}
	dui.ResetPrompt()

	return dui
}

func (dui *DialogueUI) loadFonts() {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		panic(err)
	}

	dui.titleFace = &text.GoTextFace{
		Source: bold,
		Size:   22,
	}
	dui.normalFace = &text.GoTextFace{
		Source: regular,
		Size:   16,
	}
	dui.smallFace = &text.GoTextFace{
		Source: regular,
		Size:   13,
	}
}

func (dui *DialogueUI) buildUI() {
	// Transparent root so the map shows through
	dui.root = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	dui.strip = dui.buildStrip()
	dui.root.AddChild(dui.strip)
	dui.panel = dui.buildPanel()

	dui.UI = &ebitenui.UI{
		Container: dui.root,
	}
}

func (dui *DialogueUI) buildStrip() *widget.Container {
	strip := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(uiimage.NewNineSliceColor(cfg.PanelCream)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(stripPadding)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
				StretchHorizontal:  true,
			}),
		),
	)

	dui.bust = widget.NewGraphic()
	strip.AddChild(dui.bust)

	dui.promptColumn = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
	dui.promptText = widget.NewText(
		widget.TextOpts.Text("", &dui.normalFace, cfg.InkDark),
		widget.TextOpts.MaxWidth(float64(cfg.DefaultGame().CanvasWidth)-200),
	)
	dui.promptColumn.AddChild(dui.promptText)

	dui.actionButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(140, 28)),
		widget.ButtonOpts.Image(dui.buttonImage()),
		widget.ButtonOpts.Text("", &dui.normalFace, dui.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			dui.push(dialogue.EventLearnMore)
		}),
	)
	strip.AddChild(dui.promptColumn)

	return strip
}

func (dui *DialogueUI) buildPanel() *widget.Container {
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(uiimage.NewNineSliceColor(cfg.PanelCream)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(16)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(panelWidth, 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	// Section 1: title, image and address
	dui.titleLabel = widget.NewText(
		widget.TextOpts.Text("", &dui.titleFace, cfg.InkDark),
		widget.TextOpts.MaxWidth(panelWidth-32),
	)
	panel.AddChild(dui.titleLabel)

	dui.image = widget.NewGraphic()
	panel.AddChild(dui.image)

	dui.addressText = widget.NewText(
		widget.TextOpts.Text("", &dui.smallFace, cfg.InkDark),
	)
	panel.AddChild(dui.addressText)

	// Section 2: characteristic icons
	dui.iconRow = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
	panel.AddChild(dui.iconRow)

	// Section 3: preview text, toggle and link
	dui.previewRow = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(4),
		)),
	)
	dui.previewText = widget.NewText(
		widget.TextOpts.Text("", &dui.normalFace, cfg.InkDark),
		widget.TextOpts.MaxWidth(panelWidth-32),
	)
	dui.previewRow.AddChild(dui.previewText)
	dui.toggleButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(90, 22)),
		widget.ButtonOpts.Image(dui.linkImage()),
		widget.ButtonOpts.Text(cfg.Text.SeeMore, &dui.smallFace, dui.linkTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			dui.togglePreview()
		}),
	)
	panel.AddChild(dui.previewRow)

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
		)),
	)
	dui.linkButton = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(200, 28)),
		widget.ButtonOpts.Image(dui.linkImage()),
		widget.ButtonOpts.Text(cfg.Text.LinkLabel, &dui.normalFace, dui.linkTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if dui.content.Link != "" && dui.OpenURL != nil {
				dui.OpenURL(dui.content.Link)
			}
		}),
	)
	buttons.AddChild(dui.linkButton)

	closeButton := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(90, 28)),
		widget.ButtonOpts.Image(dui.buttonImage()),
		widget.ButtonOpts.Text(cfg.Text.CloseButton, &dui.normalFace, dui.buttonTextColor()),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			dui.closePanel()
		}),
	)
	buttons.AddChild(closeButton)
	panel.AddChild(buttons)

	return panel
}

func (dui *DialogueUI) buttonImage() *widget.ButtonImage {
	idle := uiimage.NewNineSliceColor(color.RGBA{115, 41, 130, 255})
	hover := uiimage.NewNineSliceColor(color.RGBA{140, 60, 160, 255})
	pressed := uiimage.NewNineSliceColor(color.RGBA{90, 30, 100, 255})
	disabled := uiimage.NewNineSliceColor(color.RGBA{120, 120, 120, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (dui *DialogueUI) buttonTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:    color.RGBA{255, 255, 255, 255},
		Hover:   color.RGBA{255, 237, 0, 255},
		Pressed: color.RGBA{220, 220, 220, 255},
	}
}

func (dui *DialogueUI) linkImage() *widget.ButtonImage {
	transparent := uiimage.NewNineSliceColor(color.RGBA{0, 0, 0, 0})
	hover := uiimage.NewNineSliceColor(color.RGBA{36, 64, 142, 30})

	return &widget.ButtonImage{
		Idle:    transparent,
		Hover:   hover,
		Pressed: hover,
	}
}

func (dui *DialogueUI) linkTextColor() *widget.ButtonTextColor {
	return &widget.ButtonTextColor{
		Idle:    cfg.LinkBlue,
		Hover:   cfg.LinkBlue,
		Pressed: cfg.InkDark,
	}
}

// ShowPrompt replaces the prompt text; the action button shows only with a label.
func (dui *DialogueUI) ShowPrompt(p dialogue.Prompt) {
	dui.promptText.Label = p.Text
	if p.ActionLabel == "" {
		dui.setActionVisible(false)
		return
	}
	dui.actionButton.Text().Label = p.ActionLabel
	dui.setActionVisible(true)
}

func (dui *DialogueUI) ResetPrompt() {
	dui.ShowPrompt(dialogue.Prompt{Text: cfg.Text.DefaultPrompt})
}

func (dui *DialogueUI) setActionVisible(visible bool) {
	if visible == dui.actionShown {
		return
	}
	if visible {
		dui.promptColumn.AddChild(dui.actionButton)
	} else {
		dui.promptColumn.RemoveChild(dui.actionButton)
	}
	dui.actionShown = visible
}

// ShowLocation fills and opens the location panel.
func (dui *DialogueUI) ShowLocation(c dialogue.LocationContent) {
	dui.content = c
	dui.titleLabel.Label = c.Title
	dui.addressText.Label = c.Address

	dui.image.Image = nil
	if c.Image != "" && dui.Provider != nil {
		dui.watch(dui.Provider.Load(c.Image), dui.image, panelImageW)
	}

	dui.iconRow.RemoveChildren()
	for _, characteristic := range c.Characteristics {
		icon := widget.NewGraphic()
		dui.iconRow.AddChild(icon)
		if dui.Provider != nil {
			dui.watch(dui.Provider.Load(assets.LegendIconKey(characteristic)), icon, legendIconW)
		}
	}

	dui.refreshPreview()
	dui.linkButton.GetWidget().Disabled = c.Link == ""

	if !dui.panelOpen {
		dui.root.AddChild(dui.panel)
		dui.panelOpen = true
	}
	dui.root.RequestRelayout()
}

func (dui *DialogueUI) LocationOpen() bool {
	return dui.panelOpen
}

// Events drains the actions collected since the last call.
func (dui *DialogueUI) Events() []dialogue.Event {
	events := dui.events
	dui.events = nil
	return events
}

func (dui *DialogueUI) push(kind dialogue.EventKind) {
	dui.events = append(dui.events, dialogue.Event{Kind: kind})
}

func (dui *DialogueUI) closePanel() {
	if !dui.panelOpen {
		return
	}
	dui.root.RemoveChild(dui.panel)
	dui.panelOpen = false
	dui.push(dialogue.EventClose)
}

func (dui *DialogueUI) togglePreview() {
	dui.content.Preview.Toggle()
	dui.refreshPreview()
}

func (dui *DialogueUI) refreshPreview() {
	p := dui.content.Preview
	dui.previewText.Label = strings.TrimRight(p.Text(), " ")

	collapsible := p.Collapsible()
	if collapsible {
		dui.toggleButton.Text().Label = p.ToggleLabel()
	}
	if collapsible != dui.toggleShown {
		if collapsible {
			dui.previewRow.AddChild(dui.toggleButton)
		} else {
			dui.previewRow.RemoveChild(dui.toggleButton)
		}
		dui.toggleShown = collapsible
	}
}

// watch fills graphic with h scaled to width once h finishes loading.
func (dui *DialogueUI) watch(h *assets.Handle, graphic *widget.Graphic, width float64) {
	dui.pending = append(dui.pending, pendingGraphic{handle: h, graphic: graphic, width: width})
}

func (dui *DialogueUI) resolvePending() {
	kept := dui.pending[:0]
	changed := false
	for _, p := range dui.pending {
		switch {
		case p.handle.Ready():
			p.graphic.Image = scaledImage(p.handle.Image(), p.width)
			changed = true
		case p.handle.Failed():
			// Left empty, like a broken image.
		default:
			kept = append(kept, p)
		}
	}
	dui.pending = kept
	if changed {
		dui.root.RequestRelayout()
	}
}

func scaledImage(src *ebiten.Image, width float64) *ebiten.Image {
	b := src.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return src
	}
	scale := width / float64(b.Dx())
	dst := ebiten.NewImage(int(math.Ceil(width)), int(math.Ceil(float64(b.Dy())*scale)))
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, op)
	return dst
}

// Update runs the widgets, attaches finished images and closes the panel
// on Esc or a press outside it.
func (dui *DialogueUI) Update() {
	dui.resolvePending()
	dui.UI.Update()

	if !dui.panelOpen {
		return
	}
	for _, key := range cfg.Input.Bindings[cfg.ActionCloseDialogue].Keys {
		if inpututil.IsKeyJustPressed(key) {
			dui.closePanel()
			return
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if !dui.insidePanel(ebiten.CursorPosition()) {
			dui.closePanel()
			return
		}
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		if !dui.insidePanel(ebiten.TouchPosition(id)) {
			dui.closePanel()
			return
		}
	}
}

func (dui *DialogueUI) insidePanel(x, y int) bool {
	return image.Pt(x, y).In(dui.panel.GetWidget().Rect)
}

// Draw renders the overlay on top of the map.
func (dui *DialogueUI) Draw(screen *ebiten.Image) {
	dui.UI.Draw(screen)
}
