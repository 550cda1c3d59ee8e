// Package terminal runs the interactive annotation UI: a tcell screen
// showing the document with stacked span underlines, a unit cursor, and
// selection-driven span editing. All index extraction happens here; the
// editor core only ever sees unit ranges.
package terminal

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/forward-it/ner-span-annotator/core"
	"github.com/forward-it/ner-span-annotator/editor"
	"github.com/forward-it/ner-span-annotator/layout"
	"github.com/forward-it/ner-span-annotator/render"
)

// UI is the interactive annotator session state.
type UI struct {
	screen  tcell.Screen
	ed      *editor.Editor
	palette *render.Palette
	doc     core.Document
	path    string

	cursor  int // Unit index under the cursor
	anchor  int // Selection anchor unit, -1 when no selection
	active  int // Selected span id, -1 when none
	editing int // Span id with an open label edit, -1 when none
	scroll  int // First visible screen row

	status string
	quit   bool
}

// Run opens the annotator over a document. Mutations are saved back to path
// as a JSON document when the user saves.
func Run(doc core.Document, path string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	opts := doc.Options.WithDefaults()
	ui := &UI{
		screen:  screen,
		ed:      editor.FromDocument(doc, nil),
		palette: render.NewPalette(opts.Colors),
		doc:     doc,
		path:    path,
		anchor:  -1,
		active:  -1,
		editing: -1,
	}
	return ui.loop()
}

func (ui *UI) loop() error {
	for !ui.quit {
		ui.draw()
		switch ev := ui.screen.PollEvent().(type) {
		case *tcell.EventResize:
			ui.screen.Sync()
		case *tcell.EventKey:
			ui.handleKey(ev)
		}
	}
	return nil
}

func (ui *UI) handleKey(ev *tcell.EventKey) {
	if ui.editing >= 0 {
		ui.handleEditKey(ev)
		return
	}

	switch ev.Key() {
	case tcell.KeyLeft:
		ui.moveCursor(-1)
	case tcell.KeyRight:
		ui.moveCursor(1)
	case tcell.KeyEscape:
		ui.anchor = -1
		ui.active = -1
		ui.status = ""
	case tcell.KeyEnter:
		ui.commitSelection()
	case tcell.KeyTab:
		ui.cycleSpan()
	case tcell.KeyCtrlR:
		if !ui.ed.Redo() {
			ui.status = "nothing to redo"
		}
	case tcell.KeyCtrlC:
		ui.quit = true
	case tcell.KeyRune:
		ui.handleRune(ev.Rune())
	}
}

func (ui *UI) handleRune(r rune) {
	switch r {
	case 'h':
		ui.moveCursor(-1)
	case 'l':
		ui.moveCursor(1)
	case 'v':
		if ui.anchor < 0 {
			ui.anchor = ui.cursor
			ui.status = "selecting; Enter to create span"
		} else {
			ui.anchor = -1
			ui.status = ""
		}
	case 'e':
		if ui.active >= 0 && ui.ed.BeginEdit(ui.active) {
			ui.editing = ui.active
			ui.status = "editing label; arrows cycle, Enter approves, Esc cancels"
		}
	case 'x':
		if ui.active >= 0 && ui.ed.Remove(ui.active) {
			ui.active = -1
		}
	case '[':
		ui.adjust(ui.ed.MoveStart, editor.Left)
	case ']':
		ui.adjust(ui.ed.MoveStart, editor.Right)
	case '{':
		ui.adjust(ui.ed.MoveEnd, editor.Left)
	case '}':
		ui.adjust(ui.ed.MoveEnd, editor.Right)
	case 'u':
		if !ui.ed.Undo() {
			ui.status = "nothing to undo"
		}
	case 's':
		ui.save()
	case 'q':
		ui.quit = true
	}
}

// handleEditKey drives the label edit: arrows cycle the pending label
// through the accepted set, Enter approves, Esc cancels.
func (ui *UI) handleEditKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyLeft:
		ui.cycleLabel(-1)
	case tcell.KeyRight:
		ui.cycleLabel(1)
	case tcell.KeyEnter:
		ui.ed.ApproveEdit(ui.editing)
		ui.editing = -1
		ui.status = ""
	case tcell.KeyEscape:
		ui.ed.CancelEdit(ui.editing)
		ui.editing = -1
		ui.status = ""
	}
}

func (ui *UI) cycleLabel(dir int) {
	labels := ui.ed.AcceptedLabels()
	if len(labels) == 0 {
		return
	}
	pending, ok := ui.ed.PendingLabel(ui.editing)
	if !ok {
		return
	}
	i := 0
	for j, l := range labels {
		if l == pending {
			i = j
			break
		}
	}
	i = (i + dir + len(labels)) % len(labels)
	ui.ed.SetPendingLabel(ui.editing, labels[i])
}

func (ui *UI) moveCursor(delta int) {
	ui.cursor += delta
	if ui.cursor < 0 {
		ui.cursor = 0
	}
	if max := ui.ed.Units().Len() - 1; ui.cursor > max {
		ui.cursor = max
	}
	ui.syncActive()
}

// syncActive keeps the active span on the cursor position.
func (ui *UI) syncActive() {
	at := ui.ed.SpansAt(ui.cursor)
	for _, s := range at {
		if s.ID == ui.active {
			return
		}
	}
	ui.active = -1
	if len(at) > 0 {
		ui.active = at[0].ID
	}
}

func (ui *UI) cycleSpan() {
	at := ui.ed.SpansAt(ui.cursor)
	if len(at) == 0 {
		return
	}
	next := 0
	for i, s := range at {
		if s.ID == ui.active {
			next = (i + 1) % len(at)
			break
		}
	}
	ui.active = at[next].ID
}

// commitSelection turns the anchor-to-cursor range into a new span, or
// begins a label edit on the active span when nothing is selected.
func (ui *UI) commitSelection() {
	if ui.anchor < 0 {
		if ui.active >= 0 && ui.ed.BeginEdit(ui.active) {
			ui.editing = ui.active
			ui.status = "editing label; arrows cycle, Enter approves, Esc cancels"
		}
		return
	}
	start, end := ui.anchor, ui.cursor
	if start > end {
		start, end = end, start
	}
	id, ok := ui.ed.CreateFromRange(start, end+1)
	ui.anchor = -1
	if !ok {
		ui.status = "invalid selection"
		return
	}
	ui.active = id
	ui.editing = id
	ui.status = "editing label; arrows cycle, Enter approves, Esc cancels"
}

func (ui *UI) adjust(op func(int, editor.Direction) bool, dir editor.Direction) {
	if ui.active < 0 {
		return
	}
	if !op(ui.active, dir) {
		ui.status = "boundary at limit"
	}
}

func (ui *UI) save() {
	out := ui.doc
	out.Spans = ui.ed.Values()
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		ui.status = fmt.Sprintf("save failed: %v", err)
		return
	}
	if err := os.WriteFile(ui.path, append(data, '\n'), 0644); err != nil {
		ui.status = fmt.Sprintf("save failed: %v", err)
		return
	}
	ui.status = "saved " + ui.path
}

func (ui *UI) draw() {
	ui.screen.Clear()
	width, height := ui.screen.Size()
	if width < 1 {
		return
	}

	positions := ui.ed.Positions()
	lines := ui.wrap(positions, width)

	// Keep the cursor's visual line on screen.
	row := 0
	cursorRow := 0
	rows := make([]int, len(lines))
	for li, line := range lines {
		rows[li] = row
		for _, i := range line {
			if i == ui.cursor {
				cursorRow = row
			}
		}
		row += 1 + 2*ui.lineDepth(positions, line) + 1
	}
	if cursorRow < ui.scroll {
		ui.scroll = cursorRow
	}
	if cursorRow >= ui.scroll+height-1 {
		ui.scroll = cursorRow - height + 2
	}

	for li, line := range lines {
		ui.drawLine(positions, line, rows[li])
	}

	ui.drawStatus(width, height)
	ui.screen.Show()
}

// wrap splits unit indices into visual lines that fit the screen width.
func (ui *UI) wrap(positions []layout.Position, width int) [][]int {
	var lines [][]int
	var line []int
	x := 0
	for i, p := range positions {
		w := runewidth.StringWidth(p.Content)
		if x > 0 && x+1+w > width {
			lines = append(lines, line)
			line = nil
			x = 0
		}
		if x > 0 {
			x++ // Separator space
		}
		line = append(line, i)
		x += w
	}
	if len(line) > 0 {
		lines = append(lines, line)
	}
	return lines
}

// lineDepth is the deepest slot active on a visual line.
func (ui *UI) lineDepth(positions []layout.Position, line []int) int {
	depth := 0
	for _, i := range line {
		if s := positions[i].MaxSlot(); s > depth {
			depth = s
		}
	}
	return depth
}

func (ui *UI) drawLine(positions []layout.Position, line []int, row int) {
	x := 0
	for _, i := range line {
		p := positions[i]
		ui.drawUnit(p, x, row-ui.scroll)
		w := runewidth.StringWidth(p.Content)
		ui.drawMarks(positions, i, x, w, row-ui.scroll)
		x += w + 1
	}
}

func (ui *UI) drawUnit(p layout.Position, x, y int) {
	style := tcell.StyleDefault
	selStart, selEnd := ui.selection()
	switch {
	case p.Index == ui.cursor:
		style = style.Reverse(true)
	case selStart <= p.Index && p.Index < selEnd:
		style = style.Underline(true).Bold(true)
	}
	if ui.active >= 0 {
		if s, ok := ui.ed.Span(ui.active); ok && s.Covers(p.Index) {
			style = style.Bold(true)
		}
	}
	drawText(ui.screen, x, y, p.Content, style)
}

// drawMarks renders the underline bar and label rows below one unit: slot s
// occupies rows y+2s-1 (bar) and y+2s (label).
func (ui *UI) drawMarks(positions []layout.Position, i, x, w, y int) {
	p := positions[i]
	if p.Whitespace {
		return
	}
	for _, entry := range p.Entries {
		color := tcell.GetColor(ui.palette.Color(entry.Label))
		style := tcell.StyleDefault.Foreground(color)
		barY := y + 2*entry.Slot - 1

		bar := w
		// Bridge the separator on span continuation within the line.
		if i+1 < len(positions) && !positions[i+1].Whitespace {
			if next, ok := entryAt(positions[i+1], entry.ID); ok && next.Slot == entry.Slot {
				bar = w + 1
			}
		}
		for c := 0; c < bar; c++ {
			ui.screen.SetContent(x+c, barY, '━', nil, style)
		}
		if entry.Start {
			label := entry.Label
			if entry.ID == ui.editing {
				if pending, ok := ui.ed.PendingLabel(entry.ID); ok {
					label = "[" + pending + "]"
					style = style.Bold(true)
				}
			}
			drawText(ui.screen, x, barY+1, label, style)
		}
	}
}

func entryAt(p layout.Position, id int) (layout.Entry, bool) {
	for _, e := range p.Entries {
		if e.ID == id {
			return e, true
		}
	}
	return layout.Entry{}, false
}

// selection returns the half-open selected range, or an empty range.
func (ui *UI) selection() (int, int) {
	if ui.anchor < 0 {
		return 0, 0
	}
	start, end := ui.anchor, ui.cursor
	if start > end {
		start, end = end, start
	}
	return start, end + 1
}

func (ui *UI) drawStatus(width, height int) {
	bar := fmt.Sprintf(" %d/%d ", ui.cursor+1, ui.ed.Units().Len())
	if ui.active >= 0 {
		if s, ok := ui.ed.Span(ui.active); ok {
			bar += fmt.Sprintf("span %s [%d,%d) ", s.Label, s.Start, s.End)
		}
	}
	if ui.status != "" {
		bar += "| " + ui.status
	}
	style := tcell.StyleDefault.Reverse(true)
	drawText(ui.screen, 0, height-1, runewidth.FillRight(bar, width), style)
}

func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}
