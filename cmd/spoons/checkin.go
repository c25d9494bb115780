// ABOUTME: CLI commands for the daily energy check-in.
// ABOUTME: One check-in per day; logging again for the same day replaces it.
package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harperreed/spoons/internal/models"
)

var (
	checkinMood     string
	checkinSymptoms []string
	checkinDate     string
	checkinLimit    int
)

var checkinCmd = &cobra.Command{
	Use:     "checkin",
	Aliases: []string{"ci"},
	Short:   "Log and review daily check-ins",
	Long: `Record how much energy you have today, how you feel, and any symptoms.

ENERGY LEVELS:

  very-low, low, moderate, high

MOODS:

  calm, overwhelmed, hopeful, tired, anxious, content

SYMPTOMS:

  fatigue, pain, brain-fog, dizziness, anxiety, nausea,
  sensory-sensitivity, overwhelm, emotional-exhaustion, irritability`,
}

var checkinAddCmd = &cobra.Command{
	Use:     "add <energy>",
	Aliases: []string{"a", "log"},
	Short:   "Log a check-in",
	Long: `Log today's check-in. Checking in again on the same day replaces the earlier one.

EXAMPLES:

  spoons checkin add low --mood tired
  spoons checkin add very-low --mood overwhelmed -s fatigue -s brain-fog
  spoons checkin add moderate --mood calm --date 2024-02-14`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		date := checkinDate
		if date == "" {
			date = models.FormatDate(now())
		}

		symptoms := make([]models.Symptom, 0, len(checkinSymptoms))
		for _, s := range checkinSymptoms {
			sym, err := models.ParseSymptom(strings.TrimSpace(s))
			if err != nil {
				return err
			}
			symptoms = append(symptoms, sym)
		}

		energy, err := models.ParseEnergyLevel(args[0])
		if err != nil {
			return err
		}
		mood, err := models.ParseMood(checkinMood)
		if err != nil {
			return err
		}

		c := models.NewCheckIn(date, energy, mood, symptoms...)
		if err := models.Validate(c); err != nil {
			return err
		}

		if err := gw.SaveCheckIn(*c); err != nil {
			warnWrite(out, "check-in", err)
			return nil
		}

		success(out, "Checked in for %s", date)
		printCheckIn(out, c)
		return nil
	},
}

var checkinShowCmd = &cobra.Command{
	Use:   "show [date]",
	Short: "Show the check-in for a day (default today)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		date := models.FormatDate(now())
		if len(args) == 1 {
			date = args[0]
			if !models.IsDate(date) {
				return fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", date)
			}
		}

		c := gw.CheckInFor(date)
		if c == nil {
			fmt.Fprintf(out, "No check-in for %s.\n", date)
			fmt.Fprintln(out, faint.Sprint(models.NoCheckInMessage))
			return nil
		}
		printCheckIn(out, c)
		return nil
	},
}

var checkinListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List recent check-ins, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		checkIns := gw.CheckIns()
		if len(checkIns) == 0 {
			fmt.Fprintln(out, "No check-ins yet.")
			return nil
		}

		sort.Slice(checkIns, func(i, j int) bool { return checkIns[i].Date > checkIns[j].Date })
		if checkinLimit > 0 && len(checkIns) > checkinLimit {
			checkIns = checkIns[:checkinLimit]
		}

		for _, c := range checkIns {
			fmt.Fprintf(out, "%s %s %s%s\n",
				faint.Sprint(c.Date),
				padRight(c.EnergyLevel.Label(), 9),
				padRight(string(c.Mood), 12),
				faint.Sprint(symptomList(c.Symptoms)))
		}
		return nil
	},
}

var checkinRmCmd = &cobra.Command{
	Use:     "rm <date>",
	Aliases: []string{"delete", "del"},
	Short:   "Delete the check-in for a day",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		date := args[0]

		if gw.CheckInFor(date) == nil {
			return fmt.Errorf("no check-in for %s", date)
		}
		if err := gw.DeleteCheckIn(date); err != nil {
			warnWrite(out, "check-ins", err)
			return nil
		}
		warn(out, "Deleted check-in for %s", date)
		return nil
	},
}

func printCheckIn(w io.Writer, c *models.CheckIn) {
	fmt.Fprintf(w, "  Energy:   %s\n", c.EnergyLevel.Label())
	fmt.Fprintf(w, "  Mood:     %s\n", c.Mood)
	if len(c.Symptoms) > 0 {
		fmt.Fprintf(w, "  Symptoms: %s\n", symptomList(c.Symptoms))
	}
	fmt.Fprintln(w, faint.Sprint("  "+c.EnergyLevel.Message()))
}

func symptomList(symptoms []models.Symptom) string {
	names := make([]string, len(symptoms))
	for i, s := range symptoms {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	checkinAddCmd.Flags().StringVarP(&checkinMood, "mood", "m", "", "how you feel (required)")
	checkinAddCmd.Flags().StringSliceVarP(&checkinSymptoms, "symptom", "s", nil, "symptom, repeatable or comma-separated")
	checkinAddCmd.Flags().StringVar(&checkinDate, "date", "", "day to log (YYYY-MM-DD, default today)")
	_ = checkinAddCmd.MarkFlagRequired("mood")

	checkinListCmd.Flags().IntVarP(&checkinLimit, "limit", "n", 14, "max number of check-ins")

	checkinCmd.AddCommand(checkinAddCmd)
	checkinCmd.AddCommand(checkinShowCmd)
	checkinCmd.AddCommand(checkinListCmd)
	checkinCmd.AddCommand(checkinRmCmd)
	rootCmd.AddCommand(checkinCmd)
}
