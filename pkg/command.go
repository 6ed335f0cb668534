package pkg

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/madverse/madverse/pkg/ai"
	"github.com/madverse/madverse/pkg/engine"
	"github.com/madverse/madverse/pkg/stats"
	"github.com/madverse/madverse/pkg/story"
	"github.com/madverse/madverse/pkg/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewCommand() (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "story",
		Short: "Generate MadVerse Stories",
	}

	cmd.AddCommand(
		newTellCommand(),
		newAICommand(),
		newGenresCommand(),
		newStatsCommand(),
	)

	return cmd, nil
}

func newTellCommand() *cobra.Command {
	var (
		wordFlags []string
		seed      int64
		saveFile  string
		again     int
		jsonOut   bool
	)

	cmd := &cobra.Command{
		Use:   "tell [genre]",
		Short: "Assemble a story from a genre's templates and your words",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			genre, ok := story.FindGenre(args[0])
			if !ok {
				return fmt.Errorf("unknown genre %q, run the genres command for the list", args[0])
			}
			if genre.ID == story.GenreAI {
				return fmt.Errorf("the %q genre is generated remotely, use the ai command", genre.ID)
			}

			rng := newRand(seed)
			words := story.FillMissing(rng, genre.Prompts, parseWords(wordFlags))

			eng := engine.New(rng)
			segments := eng.Generate(genre, words)
			renderStory(genre.Name, segments, jsonOut)

			tracker, err := openTracker()
			if err != nil {
				return err
			}
			defer tracker.Close()

			announceAchievements(tracker.RecordStory(genre.ID, words))

			// Regenerations reuse the same words, only the assembly changes.
			for i := 0; i < again; i++ {
				segments = eng.Generate(genre, words)
				renderStory(genre.Name, segments, jsonOut)
				announceAchievements(tracker.RecordRegeneration())
				announceAchievements(tracker.RecordStory(genre.ID, words))
			}

			if saveFile != "" {
				if err := saveStory(saveFile, genre, words, segments); err != nil {
					return err
				}
				announceAchievements(tracker.RecordSave())
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&wordFlags, "word", "w", nil, "word entry as key=value, missing ones are drawn from the banks")
	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for reproducible assembly (0 means random)")
	cmd.Flags().StringVar(&saveFile, "save", "", "save the story as plain text under this name")
	cmd.Flags().IntVar(&again, "again", 0, "regenerate this many extra stories with the same words")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the story as JSON instead of colored text")

	return cmd
}

func newAICommand() *cobra.Command {
	var (
		wordFlags []string
		mood      string
		saveFile  string
		jsonOut   bool
	)

	cmd := &cobra.Command{
		Use:   "ai",
		Short: "Let the remote narrator write the story",
		RunE: func(_ *cobra.Command, _ []string) error {
			genre, _ := story.FindGenre(story.GenreAI)

			rng := newRand(0)
			words := story.FillMissing(rng, genre.Prompts, parseWords(wordFlags))

			if mood == "" {
				mood = viper.GetString("MADVERSE_MOOD")
			}
			if mood == "" {
				mood = story.MoodPresets[rng.Intn(len(story.MoodPresets))]
			}

			llm, err := ai.New()
			if err != nil {
				return err
			}
			if !llm.Configured() {
				log.Println("No remote provider configured, expect an apologetic story")
			}

			log.Printf("Mood: %s\n", mood)
			res := <-llm.GenerateAsync(context.Background(), words, mood)
			segments := res.Segments
			if res.Err != nil {
				segments = ai.Degraded(res.Err.Error())
			}
			renderStory(genre.Name, segments, jsonOut)

			if res.Meta.Reflection != "" {
				log.Printf("Chaos level: %d/10, best word: %q\n", res.Meta.ChaosLevel, res.Meta.BestWord)
			}

			tracker, err := openTracker()
			if err != nil {
				return err
			}
			defer tracker.Close()
			announceAchievements(tracker.RecordStory(genre.ID, words))

			if saveFile != "" {
				if err := saveStory(saveFile, genre, words, segments); err != nil {
					return err
				}
				announceAchievements(tracker.RecordSave())
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&wordFlags, "word", "w", nil, "word entry as key=value, missing ones are drawn from the banks")
	cmd.Flags().StringVar(&mood, "mood", "", "sub-genre/mood label for the narrator (free form)")
	cmd.Flags().StringVar(&saveFile, "save", "", "save the story as plain text under this name")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "print the story as JSON instead of colored text")

	return cmd
}

func newGenresCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "genres",
		Short: "List available genres",
		RunE: func(_ *cobra.Command, _ []string) error {
			name := color.New(color.Bold)
			for _, g := range story.Genres() {
				name.Printf("%-12s", g.ID)
				fmt.Printf(" %s — %s\n", g.Name, g.Tagline)
			}
			return nil
		},
	}
}

func newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show play statistics and achievements",
		RunE: func(_ *cobra.Command, _ []string) error {
			tracker, err := openTracker()
			if err != nil {
				return err
			}
			defer tracker.Close()

			sum, err := tracker.Summary()
			if err != nil {
				return err
			}
			fmt.Printf("Stories told:    %d\n", sum.TotalStories)
			fmt.Printf("Stories saved:   %d\n", sum.StoriesSaved)
			fmt.Printf("Regenerations:   %d\n", sum.Regenerations)
			fmt.Printf("Genres played:   %d\n", sum.GenresPlayed)
			fmt.Printf("Favorite genre:  %s\n", sum.FavoriteGenre)
			fmt.Printf("Most used word:  %s\n", sum.MostUsedWord)
			fmt.Printf("Achievements:    %d/%d\n\n", sum.AchievementsUnlocked, sum.TotalAchievements)

			unlocked, err := tracker.UnlockedIDs()
			if err != nil {
				return err
			}
			done := color.New(color.FgHiGreen)
			for _, a := range stats.Achievements() {
				mark := " "
				if unlocked[a.ID] {
					mark = "x"
				}
				line := fmt.Sprintf("[%s] %s %s — %s", mark, a.Icon, a.Name, a.Desc)
				if unlocked[a.ID] {
					done.Println(line)
				} else {
					fmt.Println(line)
				}
			}
			return nil
		},
	}
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// parseWords turns repeated --word key=value flags into a WordMap. Malformed
// entries are skipped; the banks fill whatever is missing later.
func parseWords(flags []string) story.WordMap {
	words := story.WordMap{}
	for _, f := range flags {
		key, value, ok := strings.Cut(f, "=")
		if !ok {
			log.Printf("Ignoring malformed --word %q (want key=value)\n", f)
			continue
		}
		words[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return words
}

var segmentColors = map[story.SegmentType]*color.Color{
	story.SegmentEscalation:    color.New(color.FgHiRed, color.Bold),
	story.SegmentFourthWall:    color.New(color.FgHiBlack, color.Italic),
	story.SegmentCallback:      color.New(color.FgHiBlack, color.Italic),
	story.SegmentAuthorComment: color.New(color.FgHiCyan),
}

// renderStory is the single display path: machine-readable JSON when asked,
// the colored reveal otherwise.
func renderStory(genreName string, segments story.Segments, asJSON bool) {
	if asJSON {
		fmt.Println(segments.ToJson())
		return
	}
	printStory(genreName, segments)
}

func printStory(genreName string, segments story.Segments) {
	title := color.New(color.FgHiMagenta, color.Bold)
	title.Printf("\nMadVerse Story · %s\n\n", genreName)

	highlight := color.New(color.FgHiYellow, color.Bold)
	for _, seg := range segments {
		body, ok := segmentColors[seg.Type]
		if !ok {
			body = color.New(color.Reset)
		}

		ranges := engine.ResolveOverlaps(engine.LocateEmphasis(seg.Text, seg.EmphasisWords))
		last := 0
		for _, rg := range ranges {
			body.Print(seg.Text[last:rg.Start])
			highlight.Print(seg.Text[rg.Start:rg.End])
			last = rg.End
		}
		body.Println(seg.Text[last:])
	}
	fmt.Println()
}

func saveStory(name string, genre story.Genre, words story.WordMap, segments story.Segments) error {
	text := segments.ExportText(genre.Name, genre.Prompts, words)
	file, err := utils.SaveTextToFile(name, "txt", text)
	if err != nil {
		return err
	}
	log.Printf("Story saved to %s\n", file)
	return nil
}

func openTracker() (*stats.Tracker, error) {
	path := viper.GetString("MADVERSE_STATS_DB")
	if path == "" {
		path = "madverse_stats.db"
	}
	return stats.Open(path)
}

// announceAchievements prints newly unlocked achievements. Stats failures
// never invalidate the story output, so they log and move on.
func announceAchievements(newly []stats.Achievement, err error) {
	if err != nil {
		log.Printf("Stats not recorded: %v\n", err)
		return
	}
	unlocked := color.New(color.FgHiGreen, color.Bold)
	for _, a := range newly {
		unlocked.Printf("Achievement unlocked: %s %s — %s\n", a.Icon, a.Name, a.Desc)
	}
}
