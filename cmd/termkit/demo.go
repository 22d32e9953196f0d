package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/dshills/termkit/internal/app"
	"github.com/dshills/termkit/internal/core"
	"github.com/dshills/termkit/internal/layout"
	"github.com/dshills/termkit/internal/widget"
)

func row(a *app.Application, children ...widget.Widget) *widget.Panel {
	box := layout.NewBox(core.Horizontal)
	box.Gap = 1
	p := widget.NewPanel(a, box)
	_ = p.Add(children...)
	return p
}

// buildDemo builds the demo window. ctx bounds the progress animation.
func buildDemo(ctx context.Context, a *app.Application) *widget.Window {
	root := widget.NewWindow(a, "termkit")
	status := widget.NewLabel(a, "Ready. Ctrl+Q quits.")
	say := func(format string, args ...any) { status.SetText(fmt.Sprintf(format, args...)) }

	about := aboutDialog(a)

	file := widget.NewMenu(a, "File")
	file.SetMnemonic('f')
	aboutItem := widget.NewMenuItem(a, "About...")
	aboutItem.SetMnemonic('a')
	aboutItem.AddActionListener(func(core.ActionEvent) {
		if err := about.Show(); err != nil {
			say("about: %v", err)
		}
	})
	quit := widget.NewMenuItem(a, "Quit")
	quit.SetMnemonic('q')
	quit.AddActionListener(func(core.ActionEvent) { a.Quit() })
	_ = file.Add(aboutItem)
	file.AddSeparator()
	_ = file.Add(quit)

	edit := widget.NewMenu(a, "Edit")
	edit.SetMnemonic('e')
	clearName := widget.NewMenuItem(a, "Clear name")
	clearName.SetMnemonic('c')
	_ = edit.Add(clearName)

	bar := widget.NewMenuBar(a)
	_ = bar.AddMenu(file, edit)

	name := widget.NewTextField(a, 24)
	nameLabel := widget.NewLabel(a, "Name:")
	nameLabel.SetMnemonic('n')
	nameLabel.SetLabelFor(name)
	clearName.AddActionListener(func(core.ActionEvent) { name.SetText("") })

	fruit := widget.NewList(a, widget.StringModel{"apple", "banana", "cherry", "date", "elderberry", "fig"}, 5)
	fruit.AddItemListener(func(ev core.ItemEvent) {
		if ev.ID == core.ItemSelected {
			say("selected rows %v", fruit.SelectedIndices())
		}
	})
	fruit.AddActionListener(func(ev core.ActionEvent) { say("activated %s", ev.Command) })

	color := widget.NewComboBox(a, widget.StringModel{"red", "green", "blue"})
	color.AddActionListener(func(core.ActionEvent) {
		if v, ok := color.SelectedValue(); ok {
			say("color %s", v)
		}
	})

	progress := widget.NewProgressBar(a, 0, 100)
	progress.SetInterval(a.Config().ProgressInterval())
	busy := widget.NewCheckBox(a, "Busy")
	busy.SetMnemonic('b')
	busy.AddItemListener(func(ev core.ItemEvent) {
		progress.SetIndeterminate(ctx, ev.ID == core.ItemSelected)
	})

	greet := widget.NewButton(a, "Greet")
	greet.SetMnemonic('g')
	greet.AddActionListener(func(core.ActionEvent) {
		who := strings.TrimSpace(name.Text())
		if who == "" {
			who = "stranger"
		}
		say("Hello, %s!", who)
		progress.SetValue(min(progress.Value()+10, 100))
	})
	exit := widget.NewButton(a, "Quit")
	exit.AddActionListener(func(core.ActionEvent) { a.Quit() })

	_ = root.Add(
		bar,
		row(a, nameLabel, name),
		row(a, fruit, color),
		row(a, busy, progress),
		row(a, greet, exit),
		status,
	)
	return root
}

func aboutDialog(a *app.Application) *widget.Dialog {
	d := widget.NewDialog(a, "About")
	ok := widget.NewButton(a, "OK")
	ok.AddActionListener(func(core.ActionEvent) { d.Hide() })
	_ = d.Add(widget.NewLabel(a, "termkit "+version), ok)
	d.SetDefaultButton(ok)
	return d
}
