package display

import "fyne.io/fyne/v2"

// stackLayout centers visible objects vertically, each at its minimum size.
type stackLayout struct {
	gap float32
}

func (layout *stackLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	visible := visibleObjects(objects)
	total := layout.stackHeight(visible)

	y := (size.Height - total) / 2
	if y < 0 {
		y = 0
	}
	for _, object := range visible {
		minSize := object.MinSize()
		width := minSize.Width
		if width > size.Width {
			width = size.Width
		}
		x := (size.Width - width) / 2
		object.Move(fyne.NewPos(x, y))
		object.Resize(fyne.NewSize(width, minSize.Height))
		y += minSize.Height + layout.gap
	}
}

func (layout *stackLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	visible := visibleObjects(objects)
	var width float32
	for _, object := range visible {
		if objectWidth := object.MinSize().Width; objectWidth > width {
			width = objectWidth
		}
	}
	return fyne.NewSize(width, layout.stackHeight(visible))
}

func (layout *stackLayout) stackHeight(objects []fyne.CanvasObject) float32 {
	var height float32
	for index, object := range objects {
		if index > 0 {
			height += layout.gap
		}
		height += object.MinSize().Height
	}
	return height
}

func visibleObjects(objects []fyne.CanvasObject) []fyne.CanvasObject {
	visible := make([]fyne.CanvasObject, 0, len(objects))
	for _, object := range objects {
		if object.Visible() {
			visible = append(visible, object)
		}
	}
	return visible
}
