package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"artgallery/internal/catalog"
	"artgallery/internal/images"
	"artgallery/internal/textutil"
)

const (
	bioExcerptRunes  = 60
	infoExcerptRunes = 48
)

var (
	errArtistNotFound = errors.New("artist not found")
	errWorkNotFound   = errors.New("work not found")
)

type listOptions struct {
	filter  string
	jsonOut bool
}

func newListCommand(ctx *commandContext) *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List artists, optionally filtered by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, ctx, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.filter, "filter", "f", "", "Case-insensitive substring of the artist name")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "Output as JSON")
	return cmd
}

func runList(cmd *cobra.Command, ctx *commandContext, opts listOptions) error {
	sess, err := ctx.loadCatalog(cmd)
	if err != nil {
		return err
	}
	sess.store.SetFilter(opts.filter)
	view := sess.store.CurrentView()

	if opts.jsonOut {
		if view == nil {
			view = []catalog.Artist{}
		}
		return writeJSON(cmd, view)
	}

	out := cmd.OutOrStdout()
	if len(view) == 0 {
		if opts.filter != "" {
			fmt.Fprintf(out, "No artists match %q.\n", opts.filter)
		} else {
			fmt.Fprintln(out, "The catalog is empty.")
		}
		return nil
	}

	rows := make([][]string, 0, len(view))
	for _, artist := range view {
		rows = append(rows, []string{
			artist.Name,
			strconv.Itoa(len(artist.Works)),
			artist.Image,
			textutil.Excerpt(artist.Bio, bioExcerptRunes),
		})
	}
	fmt.Fprintln(out, renderTable("", []column{
		{header: "Name"},
		{header: "Works", align: text.AlignRight},
		{header: "Image"},
		{header: "Bio", maxWidth: bioExcerptRunes},
	}, rows))
	return nil
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show ARTIST",
		Short: "Show one artist and their works",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := ctx.loadCatalog(cmd)
			if err != nil {
				return err
			}
			artist, err := findArtist(sess.store.CurrentView(), args[0])
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(cmd, artist)
			}

			out := cmd.OutOrStdout()
			portrait := sess.resolver.Resolve(artist.Image)
			fmt.Fprintln(out, artist.Name)
			fmt.Fprintln(out, "Author")
			fmt.Fprintf(out, "Image: %s\n", describeImage(portrait))
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Biography")
			fmt.Fprintln(out, artist.Bio)
			fmt.Fprintln(out)
			if len(artist.Works) == 0 {
				fmt.Fprintln(out, "No works.")
				return nil
			}
			rows := make([][]string, 0, len(artist.Works))
			for i, work := range artist.Works {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					work.Title,
					describeImage(sess.resolver.Resolve(work.Image)),
					textutil.Excerpt(work.Info, infoExcerptRunes),
				})
			}
			fmt.Fprintln(out, renderTable("Works", []column{
				{header: "#", align: text.AlignRight},
				{header: "Title"},
				{header: "Image"},
				{header: "Info", maxWidth: infoExcerptRunes},
			}, rows))
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

// workDetail is the JSON shape of the work command.
type workDetail struct {
	Artist string `json:"artist"`
	catalog.Work
	ImageFound  bool `json:"image_found"`
	ImageWidth  int  `json:"image_width,omitempty"`
	ImageHeight int  `json:"image_height,omitempty"`
}

func newWorkCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "work ARTIST TITLE",
		Short: "Show one work of an artist",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := ctx.loadCatalog(cmd)
			if err != nil {
				return err
			}
			artist, err := findArtist(sess.store.CurrentView(), args[0])
			if err != nil {
				return err
			}
			work, err := findWork(artist, args[1])
			if err != nil {
				return err
			}
			img := sess.resolver.Resolve(work.Image)
			if jsonOut {
				return writeJSON(cmd, workDetail{
					Artist:      artist.Name,
					Work:        work,
					ImageFound:  img.Found,
					ImageWidth:  img.Width,
					ImageHeight: img.Height,
				})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, work.Title)
			fmt.Fprintf(out, "Artist: %s\n", artist.Name)
			fmt.Fprintf(out, "Image: %s\n", describeImage(img))
			fmt.Fprintln(out)
			fmt.Fprintln(out, work.Info)
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}

// findArtist returns the first artist whose name equals name ignoring case.
func findArtist(artists []catalog.Artist, name string) (catalog.Artist, error) {
	want := textutil.Fold(strings.TrimSpace(name))
	for _, artist := range artists {
		if textutil.Fold(artist.Name) == want {
			return artist, nil
		}
	}
	return catalog.Artist{}, fmt.Errorf("%w: %q", errArtistNotFound, name)
}

// findWork returns the artist's first work whose title equals title ignoring case.
func findWork(artist catalog.Artist, title string) (catalog.Work, error) {
	want := textutil.Fold(strings.TrimSpace(title))
	for _, work := range artist.Works {
		if textutil.Fold(work.Title) == want {
			return work, nil
		}
	}
	return catalog.Work{}, fmt.Errorf("%w: %q by %s", errWorkNotFound, title, artist.Name)
}

func describeImage(img images.Image) string {
	switch {
	case !img.Found:
		return img.Name + " (not found)"
	case img.HasDimensions():
		orientation := "portrait"
		if img.Landscape() {
			orientation = "landscape"
		}
		return fmt.Sprintf("%s (%d×%d, %s)", img.Name, img.Width, img.Height, orientation)
	default:
		return img.Name
	}
}
