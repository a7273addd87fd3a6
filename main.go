package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spf13/cobra"
	"github.com/stewi1014/glfractal-nav/config"
	"github.com/stewi1014/glfractal-nav/input"
	"github.com/stewi1014/glfractal-nav/programs"
	"github.com/stewi1014/glfractal-nav/render"
	"github.com/stewi1014/glfractal-nav/viewport"
)

func init() {
	// glfw and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCommand().ExecuteContext(ctx)
	stop()

	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := config.Default()

	cmd := &cobra.Command{
		Use:   "glfractal-nav",
		Short: "Explore a fractal rendered on the GPU",
		Long: "Explore a fractal rendered on the GPU.\n\n" +
			"Left click centers the view on the pointer and zooms in.\n" +
			"Up zooms in, Down zooms out, Escape quits.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.Validate(); err != nil {
				return err
			}
			return run(cmd.Context(), opts)
		},
	}

	opts.BindFlags(cmd.Flags())
	return cmd
}

// run owns the window for its lifetime. Any error or panic inside the frame
// loop ends up as the cause of ctx and is fatal.
func run(ctx context.Context, opts config.Options) error {
	ctx, quit := context.WithCancelCause(ctx)
	defer quit(nil)

	renderMain(ctx, quit, opts)

	err := context.Cause(ctx)
	if err == nil || errors.Is(err, context.Canceled) {
		return nil
	}

	if opts.Dialog {
		NewErrorDialog(err)
	}
	return err
}

func renderMain(ctx context.Context, quit context.CancelCauseFunc, opts config.Options) {
	defer CatchPanicToContext(quit)

	program, err := programs.Lookup(opts.Program)
	if err != nil {
		quit(err)
		return
	}

	if err := glfw.Init(); err != nil {
		quit(fmt.Errorf("glfw.Init failed: %w", err))
		return
	}
	defer glfw.Terminate()

	window, err := NewRenderWindow(opts)
	if err != nil {
		quit(err)
		return
	}
	defer window.Destroy()

	backend, err := newGLBackend(program, opts.Debug)
	if err != nil {
		quit(err)
		return
	}
	defer backend.Close()

	store := viewport.NewStore(viewport.Default(opts.Width, opts.Height))
	bridge := render.NewBridge(store, backend)
	defer bridge.Close()

	router := input.NewRouter(store, opts.Width, opts.Height, bridge.RequestRedraw)

	log.Printf("rendering %v at %v", program.Name, store.Get())
	quit(window.Run(ctx, router, bridge))
}
