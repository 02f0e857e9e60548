package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"moviehub-bot/internal/console"
	"moviehub-bot/internal/domain"
	"moviehub-bot/internal/presenter"
)

var errLoadFailed = errors.New("loading failed")

type pageFlags struct {
	page  int
	pages int
}

func (f *pageFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.page, "page", 1, "first page to show")
	cmd.Flags().IntVar(&f.pages, "pages", 1, "number of pages to show")
}

func (f *pageFlags) validate() error {
	if f.page < 1 {
		return fmt.Errorf("--page must be at least 1, got %d", f.page)
	}
	if f.pages < 1 {
		return fmt.Errorf("--pages must be at least 1, got %d", f.pages)
	}
	return nil
}

// browse loads the first page, then scrolls to the end of the list until
// enough pages are shown or the list runs out. wait blocks until the last
// load has been delivered.
func browse(flags pageFlags, load func(page int), scrollToEnd func(), wait func(), hasMore func() bool) {
	load(flags.page)
	wait()
	for shown := 1; shown < flags.pages && hasMore(); shown++ {
		scrollToEnd()
		wait()
	}
}

func televisionShowsCmd() *cobra.Command {
	var flags pageFlags
	cmd := &cobra.Command{
		Use:   "tv",
		Short: "List popular TV shows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.validate(); err != nil {
				return err
			}
			cat, err := newCatalog(cfg)
			if err != nil {
				return err
			}
			defer cat.Close()

			service := domain.NewTelevisionShowsService(cat.televisionShows)
			view := console.NewTelevisionShowsView(cmd.OutOrStdout(), cmd.ErrOrStderr())
			p := presenter.NewTelevisionShowsPresenter(view, service)
			view.OnLoadMore(p.OnLoadPopularTelevisionShows)
			defer p.OnDestroyView()

			browse(flags, p.OnLoadPopularTelevisionShows, p.OnScrollToEndOfList, service.Wait, view.HasMore)
			if view.Failed() {
				return errLoadFailed
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func moviesCmd() *cobra.Command {
	var flags pageFlags
	cmd := &cobra.Command{
		Use:   "movies",
		Short: "List popular movies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.validate(); err != nil {
				return err
			}
			cat, err := newCatalog(cfg)
			if err != nil {
				return err
			}
			defer cat.Close()

			service := domain.NewMoviesService(cat.movies)
			view := console.NewMoviesView(cmd.OutOrStdout(), cmd.ErrOrStderr())
			p := presenter.NewMoviesPresenter(view, service)
			view.OnLoadMore(p.OnLoadPopularMovies)
			defer p.OnDestroyView()

			browse(flags, p.OnLoadPopularMovies, p.OnScrollToEndOfList, service.Wait, view.HasMore)
			if view.Failed() {
				return errLoadFailed
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func peopleCmd() *cobra.Command {
	var flags pageFlags
	cmd := &cobra.Command{
		Use:     "people",
		Aliases: []string{"persons"},
		Short:   "List popular people",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.validate(); err != nil {
				return err
			}
			cat, err := newCatalog(cfg)
			if err != nil {
				return err
			}
			defer cat.Close()

			service := domain.NewPersonsService(cat.persons)
			view := console.NewPersonsView(cmd.OutOrStdout(), cmd.ErrOrStderr())
			p := presenter.NewPersonsPresenter(view, service)
			view.OnLoadMore(p.OnLoadPopularPersons)
			defer p.OnDestroyView()

			browse(flags, p.OnLoadPopularPersons, p.OnScrollToEndOfList, service.Wait, view.HasMore)
			if view.Failed() {
				return errLoadFailed
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func personCmd() *cobra.Command {
	var titleThreshold int
	cmd := &cobra.Command{
		Use:   "person <id>",
		Short: "Show a person and their credits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			personID, err := strconv.Atoi(args[0])
			if err != nil || personID < 1 {
				return fmt.Errorf("invalid person id %q", args[0])
			}
			cat, err := newCatalog(cfg)
			if err != nil {
				return err
			}
			defer cat.Close()

			service := domain.NewPersonDetailsService(cat.persons)
			view := console.NewPersonDetailsView(cmd.OutOrStdout(), cmd.ErrOrStderr(), titleThreshold)
			p := presenter.NewPersonDetailsPresenter(view, service)
			defer p.OnDestroyView()

			p.OnLoadPersonDetails(personID)
			service.Wait()
			p.OnScrollChange(view.ScrolledPastTitle())
			if view.Failed() {
				return errLoadFailed
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&titleThreshold, "title-after", 40, "repeat the name as a title after this many lines")
	return cmd
}
