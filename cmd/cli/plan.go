package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rhyrak/wolf-scheduler/internal/calendar"
	"github.com/rhyrak/wolf-scheduler/internal/csvio"
	"github.com/rhyrak/wolf-scheduler/internal/logger"
	"github.com/rhyrak/wolf-scheduler/internal/scheduler"
)

const termStartLayout = "2006-01-02"

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Build a schedule from catalog courses and export it",
	Long: `Build a schedule by adding catalog courses by name and section, print it
together with an integrity report and write the requested exports.

  wolfsched plan --add "CSC 216:001" --add "CSC 226:601" --out schedule.txt`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		adds, _ := cmd.Flags().GetStringArray("add")
		out, _ := cmd.Flags().GetString("out")
		if export, _ := cmd.Flags().GetBool("export"); export && out == "" {
			out = cfg.ExportFile
		}
		tablePath, _ := cmd.Flags().GetString("table")
		icsPath, _ := cmd.Flags().GetString("ics")
		termStartStr, _ := cmd.Flags().GetString("term-start")
		weeks, _ := cmd.Flags().GetInt("weeks")

		sched, err := loadScheduler()
		if err != nil {
			return err
		}

		title := cfg.ScheduleTitle
		if cmd.Flags().Changed("title") {
			title, _ = cmd.Flags().GetString("title")
		}
		if err := sched.SetScheduleTitle(&title); err != nil {
			return err
		}

		for _, add := range adds {
			name, section, err := parseCourseRef(add)
			if err != nil {
				return err
			}

			added, err := sched.AddCourseToSchedule(name, section)
			var dup *scheduler.DuplicateEnrollmentError
			switch {
			case errors.As(err, &dup):
				logger.Warn().Str("course", dup.Name).Str("section", section).Msg(err.Error())
			case err != nil:
				return err
			case !added:
				logger.Warn().Str("course", name).Str("section", section).Msg("course is not in the catalog")
			default:
				logger.Info().Str("course", name).Str("section", section).Msg("course added")
			}
		}

		csvio.PrintSchedule(cmd.OutOrStdout(), sched.ScheduleTitle(), sched.Schedule())
		_, report := sched.Validate(cfg.MaxCredits)
		fmt.Fprint(cmd.OutOrStdout(), report)

		if out != "" {
			if err := sched.ExportSchedule(out); err != nil {
				return fmt.Errorf("%s: %w", out, err)
			}
			logger.Info().Str("path", out).Msg("schedule exported")
		}

		if tablePath != "" {
			if err := csvio.ExportScheduleTable(sched.Schedule(), tablePath); err != nil {
				return err
			}
			logger.Info().Str("path", tablePath).Msg("schedule table exported")
		}

		if icsPath != "" {
			termStart := time.Now()
			if termStartStr != "" {
				termStart, err = time.ParseInLocation(termStartLayout, termStartStr, time.Local)
				if err != nil {
					return fmt.Errorf("invalid term start %q, expected YYYY-MM-DD: %w", termStartStr, err)
				}
			}
			if err := writeICS(sched, icsPath, termStart, weeks); err != nil {
				return err
			}
			logger.Info().Str("path", icsPath).Int("weeks", weeks).Msg("calendar exported")
		}

		logger.Debug().Str("schedule", sched.String()).Msg("done")
		return nil
	},
}

func writeICS(sched *scheduler.Scheduler, path string, termStart time.Time, weeks int) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := calendar.GenerateICS(sched.Schedule(), termStart, weeks, f); err != nil {
		return fmt.Errorf("failed to generate ICS: %w", err)
	}
	return f.Close()
}

// parseCourseRef splits "CSC 216:001" into name and section.
func parseCourseRef(ref string) (string, string, error) {
	name, section, ok := strings.Cut(ref, ":")
	if !ok || name == "" || section == "" {
		return "", "", fmt.Errorf("invalid course %q, expected NAME:SECTION", ref)
	}
	return strings.TrimSpace(name), strings.TrimSpace(section), nil
}

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().StringArrayP("add", "a", nil, "Course to add as NAME:SECTION, repeatable")
	planCmd.Flags().StringP("title", "t", "", "Schedule title")
	planCmd.Flags().StringP("out", "o", "", "Write the schedule as course records to this file")
	planCmd.Flags().BoolP("export", "e", false, "Write the schedule as course records to the configured export file")
	planCmd.Flags().String("table", "", "Write the schedule as a CSV table to this file")
	planCmd.Flags().String("ics", "", "Write the schedule as an iCalendar file")
	planCmd.Flags().String("term-start", "", "First day of the term for --ics (YYYY-MM-DD), defaults to today")
	planCmd.Flags().Int("weeks", 16, "Number of weeks the --ics events repeat")
}
