package canvas

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/orion/internal/cli"
	"github.com/thenoetrevino/orion/internal/models"
	canvasservice "github.com/thenoetrevino/orion/internal/services/canvas"
	"github.com/thenoetrevino/orion/internal/types"
)

// AddCmd returns the canvas add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <canvas-id>",
		Short: "Place an element on a canvas",
		Long: `Place a text, image, sticky note or shape element on a canvas.
Use "canvas connect" to link two elements.

Examples:
  orion canvas add $CANVAS --kind=text --text="Load balancer" --at=100,40
  orion canvas add $CANVAS --kind=note --title="TODO" --text="check quotas"
  orion canvas add $CANVAS --kind=image --image=diagram.png --size=320,200
  orion canvas add $CANVAS --kind=shape --shape=hexagon --color=#5F87D7
`,
		Args: cobra.ExactArgs(1),
		RunE: runAdd,
	}

	cmd.Flags().String("kind", "", "Element kind: text, image, note, shape (required)")
	if err := cmd.MarkFlagRequired("kind"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cmd.Flags().String("at", "0,0", "Position as x,y")
	cmd.Flags().String("size", "", "Size as w,h (default depends on kind)")
	cmd.Flags().String("color", "", "Color as #RRGGBB")
	cmd.Flags().String("text", "", "Text body, or sticky note content")
	cmd.Flags().String("title", "", "Sticky note title")
	cmd.Flags().Float64("font-size", 0, "Text font size")
	cmd.Flags().String("image", "", "Image path")
	cmd.Flags().String("shape", "", "Shape: rectangle, circle, triangle, hexagon, star")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	kind, _ := flags.GetString("kind")
	at, _ := flags.GetString("at")
	sizeFlag, _ := flags.GetString("size")
	colorFlag, _ := flags.GetString("color")
	text, _ := flags.GetString("text")
	title, _ := flags.GetString("title")
	fontSize, _ := flags.GetFloat64("font-size")
	image, _ := flags.GetString("image")
	shapeFlag, _ := flags.GetString("shape")

	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		req := canvasservice.AddElementRequest{
			CanvasID:  types.CanvasID(args[0]),
			Kind:      models.ElementKind(kind),
			Text:      text,
			Title:     title,
			FontSize:  fontSize,
			ImagePath: image,
		}

		position, err := cli.ParseVector(at)
		if err != nil {
			return err
		}
		req.Position = position

		if sizeFlag != "" {
			size, err := cli.ParseVector(sizeFlag)
			if err != nil {
				return err
			}
			req.Size = &size
		}
		if colorFlag != "" {
			color, err := cli.ParseColor(colorFlag)
			if err != nil {
				return err
			}
			req.Color = &color
		}
		if shapeFlag != "" {
			shape, ok := models.ParseShapeType(shapeFlag)
			if !ok {
				return fmt.Errorf("unknown shape %q: %w", shapeFlag, models.ErrInvalidArgument)
			}
			req.Shape = shape
		}

		e, err := c.App.CanvasService.AddElement(req)
		if err != nil {
			return err
		}

		b := e.Base()
		return f.Success("element", models.ToRecord(e), cli.IDs(b.ID), func(w io.Writer) {
			fmt.Fprintf(w, "✓ %s element added at %s (ID: %s)\n", e.Kind(), b.Position, b.ID)
		})
	})
}

// ConnectCmd returns the canvas connect subcommand
func ConnectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "connect <canvas-id> <source-id> <target-id>",
		Short: "Connect two elements on a canvas",
		Long: `Connect two existing elements. Removing either endpoint later removes
the connection with it.`,
		Args: cobra.ExactArgs(3),
		RunE: runConnect,
	}

	cmd.Flags().String("style", string(models.LineStraight), "Line style: straight, curved, orthogonal")
	cmd.Flags().Bool("arrow", false, "Draw an arrow head at the target")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runConnect(cmd *cobra.Command, args []string) error {
	styleFlag, _ := cmd.Flags().GetString("style")
	arrow, _ := cmd.Flags().GetBool("arrow")

	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		style, ok := models.ParseLineStyle(styleFlag)
		if !ok {
			return fmt.Errorf("unknown line style %q: %w", styleFlag, models.ErrInvalidArgument)
		}

		conn, err := c.App.CanvasService.Connect(canvasservice.ConnectRequest{
			CanvasID: types.CanvasID(args[0]),
			SourceID: types.ElementID(args[1]),
			TargetID: types.ElementID(args[2]),
			Style:    style,
			Arrow:    arrow,
		})
		if err != nil {
			return err
		}

		return f.Success("element", models.ToRecord(conn), cli.IDs(conn.ID), func(w io.Writer) {
			fmt.Fprintf(w, "✓ Connected %s → %s (ID: %s)\n", conn.SourceID, conn.TargetID, conn.ID)
		})
	})
}

// RemoveCmd returns the canvas remove subcommand
func RemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <canvas-id> <element-id>",
		Short: "Remove an element and every connection touching it",
		Args:  cobra.ExactArgs(2),
		RunE:  runRemove,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runRemove(cmd *cobra.Command, args []string) error {
	canvasID := types.CanvasID(args[0])
	id := types.ElementID(args[1])

	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		canvas, err := c.App.CanvasService.GetCanvas(canvasID)
		if err != nil {
			return err
		}
		before := len(canvas.Elements)

		if err := c.App.CanvasService.RemoveElement(canvasID, id); err != nil {
			return err
		}
		removed := before - len(canvas.Elements)

		return f.Success("removed", removed, cli.IDs(id), func(w io.Writer) {
			fmt.Fprintf(w, "✓ Element %s removed", id)
			if removed > 1 {
				fmt.Fprintf(w, " with %d connections", removed-1)
			}
			fmt.Fprintln(w)
		})
	})
}

// MoveCmd returns the canvas move subcommand
func MoveCmd() *cobra.Command {
	return vectorCmd("move <canvas-id> <element-id> <x,y>", "Move an element", "position",
		func(c *cli.CLI, canvasID types.CanvasID, id types.ElementID, v models.Vector2) error {
			return c.App.CanvasService.MoveElement(canvasID, id, v)
		})
}

// ResizeCmd returns the canvas resize subcommand
func ResizeCmd() *cobra.Command {
	return vectorCmd("resize <canvas-id> <element-id> <w,h>", "Resize an element", "size",
		func(c *cli.CLI, canvasID types.CanvasID, id types.ElementID, v models.Vector2) error {
			return c.App.CanvasService.ResizeElement(canvasID, id, v)
		})
}

func vectorCmd(use, short, field string, apply func(*cli.CLI, types.CanvasID, types.ElementID, models.Vector2) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			canvasID := types.CanvasID(args[0])
			id := types.ElementID(args[1])

			return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
				v, err := cli.ParseVector(args[2])
				if err != nil {
					return err
				}
				if err := apply(c, canvasID, id, v); err != nil {
					return err
				}
				return f.Success(field, v, cli.IDs(id), func(w io.Writer) {
					fmt.Fprintf(w, "✓ Element %s %s set to %s\n", id, field, v)
				})
			})
		},
	}

	cli.AddOutputFlags(cmd)
	return cmd
}
