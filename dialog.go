package main

import (
	"context"
	"fmt"
	"log"
	"runtime/debug"

	"github.com/gotk3/gotk3/gtk"
)

func CatchPanicToContext(ctxCancel context.CancelCauseFunc) {
	if v := recover(); v != nil {
		err, ok := v.(error)
		if !ok {
			err = fmt.Errorf("panic: %v", v)
		}
		err = fmt.Errorf("%w\n%v", err, string(debug.Stack()))
		if ctxCancel != nil {
			ctxCancel(err)
		}
	}
}

// NewErrorDialog shows err in a modal dialog and returns once it is closed.
// It is only used on the way out, after the render window has been destroyed.
func NewErrorDialog(err error) {
	if initErr := gtk.InitCheck(nil); initErr != nil {
		log.Println("no error dialog:", initErr)
		return
	}

	dialog := gtk.MessageDialogNew(
		nil,
		gtk.DIALOG_MODAL,
		gtk.MESSAGE_ERROR,
		gtk.BUTTONS_CLOSE,
		"GLFractal stopped: %s",
		err.Error(),
	)
	dialog.SetTitle("GLFractal")

	messageArea, areaErr := dialog.GetMessageArea()
	if areaErr != nil {
		log.Println(areaErr)

	} else {
		messageArea.GetChildren().Foreach(func(item interface{}) {
			if widget, ok := item.(*gtk.Widget); ok {
				l, err := gtk.WidgetToLabel(widget)
				if err != nil {
					return
				}

				l.SetSelectable(true)
			}
		})
	}

	dialog.SetKeepAbove(true)
	dialog.Run()
	dialog.Destroy()

	for gtk.EventsPending() {
		gtk.MainIteration()
	}
}
