package main

import (
	"fmt"
	"os"
	"time"

	"jobify-backend/internal/domain"
	"jobify-backend/internal/jobquery"

	"github.com/spf13/cobra"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Manage job applications",
}

var (
	jobInput domain.JobInput
	jobType  string
	jobState string

	listFilters domain.JobFilters
	listPage    int
	listPerPage int

	upcomingOnly bool
	exportOut    string
	confirmJob   bool
)

var jobsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new application",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		jobInput.JobType = domain.JobType(jobType)
		jobInput.JobStatus = domain.JobStatus(jobState)

		job, err := current.jobUC.CreateJob(cmd.Context(), jobInput)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Added %s at %s (%s)\n", job.Position, job.Company, job.ID)
		return nil
	},
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List applications",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		jobs, meta, err := current.jobUC.ListJobs(cmd.Context(), listFilters, listPage, listPerPage)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if meta.Total == 0 {
			fmt.Fprintln(out, "No jobs found.")
			return nil
		}

		tw := newTable(out, "ID", "COMPANY", "POSITION", "LOCATION", "TYPE", "STATUS", "APPLIED")
		for _, j := range jobs {
			row(tw, j.ID, j.Company, j.Position, j.Location, j.JobType, j.JobStatus, j.DateApplied)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(out, "\nPage %d of %d (%d jobs)\n", meta.Page, meta.TotalPages, meta.Total)
		return nil
	},
}

var jobsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one application",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		job, err := current.jobUC.GetJob(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), job)
	},
}

var jobsEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit an application; only the given flags change",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		existing, err := current.jobUC.GetJob(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		input := mergeJobInput(*existing, cmd)
		job, err := current.jobUC.UpdateJob(cmd.Context(), existing.ID, input)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated %s at %s\n", job.Position, job.Company)
		return nil
	},
}

var jobsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an application",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirmJob {
			return errNotConfirmed
		}
		if err := current.jobUC.DeleteJob(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Job deleted.")
		return nil
	},
}

var jobsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dashboard counters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		s := current.jobUC.Stats(cmd.Context())
		tw := newTable(cmd.OutOrStdout(), "PENDING", "INTERVIEWS", "DECLINED", "DECLINED THIS YEAR", "TOTAL")
		row(tw, s.PendingJobs, s.InterviewSets, s.JobsDeclined, s.DeclinedThisYear, s.TotalJobs)
		return tw.Flush()
	},
}

var jobsInterviewsCmd = &cobra.Command{
	Use:   "interviews",
	Short: "List scheduled interviews",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		all, upcoming := current.jobUC.Interviews(cmd.Context(), time.Now())
		events := all
		if upcomingOnly {
			events = upcoming
		}

		out := cmd.OutOrStdout()
		if len(events) == 0 {
			fmt.Fprintln(out, "No interviews scheduled.")
			return nil
		}
		tw := newTable(out, "DATE", "INTERVIEW", "ID")
		for _, ev := range events {
			row(tw, ev.Start.Format(domain.DateLayout), ev.Title, ev.ID)
		}
		return tw.Flush()
	},
}

var jobsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export applications to an Excel workbook",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, filename, err := current.jobUC.ExportJobs(cmd.Context(), listFilters)
		if err != nil {
			return err
		}
		if exportOut != "" {
			filename = exportOut
		}
		if err := os.WriteFile(filename, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", filename, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", filename)
		return nil
	},
}

var jobsSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load sample applications into an empty store",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		jobs, err := current.jobUC.SeedJobs(cmd.Context(), nil)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Store holds %d jobs.\n", len(jobs))
		return nil
	},
}

// mergeJobInput starts from the stored job and overrides the flags the user set.
func mergeJobInput(job domain.Job, cmd *cobra.Command) domain.JobInput {
	input := domain.JobInput{
		Company:       job.Company,
		Position:      job.Position,
		Location:      job.Location,
		JobType:       job.JobType,
		JobStatus:     job.JobStatus,
		InterviewDate: job.InterviewDate,
		Salary:        job.Salary,
		Description:   job.Description,
	}

	flags := cmd.Flags()
	if flags.Changed("company") {
		input.Company = jobInput.Company
	}
	if flags.Changed("position") {
		input.Position = jobInput.Position
	}
	if flags.Changed("location") {
		input.Location = jobInput.Location
	}
	if flags.Changed("type") {
		input.JobType = domain.JobType(jobType)
	}
	if flags.Changed("status") {
		input.JobStatus = domain.JobStatus(jobState)
	}
	if flags.Changed("interview-date") {
		input.InterviewDate = jobInput.InterviewDate
	}
	if flags.Changed("salary") {
		input.Salary = jobInput.Salary
	}
	if flags.Changed("description") {
		input.Description = jobInput.Description
	}
	return input
}

func addJobFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&jobInput.Company, "company", "", "Company name")
	cmd.Flags().StringVar(&jobInput.Position, "position", "", "Position title")
	cmd.Flags().StringVar(&jobInput.Location, "location", "", "Location")
	cmd.Flags().StringVar(&jobType, "type", string(domain.JobTypeFullTime), "full-time, part-time, contract or internship")
	cmd.Flags().StringVar(&jobState, "status", string(domain.JobStatusPending), "pending, interview, declined or accepted")
	cmd.Flags().StringVar(&jobInput.InterviewDate, "interview-date", "", "Interview date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&jobInput.Salary, "salary", "", "Salary")
	cmd.Flags().StringVar(&jobInput.Description, "description", "", "Notes")
}

func addFilterFlags(cmd *cobra.Command) {
	def := jobquery.DefaultFilters()
	cmd.Flags().StringVarP(&listFilters.Search, "search", "s", def.Search, "Match company, position or location")
	cmd.Flags().StringVar(&listFilters.JobType, "type", def.JobType, "Job type or all")
	cmd.Flags().StringVar(&listFilters.JobStatus, "status", def.JobStatus, "Job status or all")
	cmd.Flags().StringVar(&listFilters.SortBy, "sort-by", def.SortBy, "company, position or dateApplied")
	cmd.Flags().StringVar(&listFilters.SortOrder, "order", def.SortOrder, "asc or desc")
}

func init() {
	addJobFlags(jobsAddCmd)
	addJobFlags(jobsEditCmd)

	addFilterFlags(jobsListCmd)
	jobsListCmd.Flags().IntVar(&listPage, "page", 1, "Page number")
	jobsListCmd.Flags().IntVar(&listPerPage, "per-page", jobquery.DefaultPerPage, "Jobs per page")

	addFilterFlags(jobsExportCmd)
	jobsExportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default jobs_<timestamp>.xlsx)")

	jobsInterviewsCmd.Flags().BoolVar(&upcomingOnly, "upcoming", false, "Only interviews in the next 7 days")
	jobsDeleteCmd.Flags().BoolVarP(&confirmJob, "yes", "y", false, "Confirm the deletion")

	jobsCmd.AddCommand(jobsAddCmd, jobsListCmd, jobsShowCmd, jobsEditCmd, jobsDeleteCmd,
		jobsStatsCmd, jobsInterviewsCmd, jobsExportCmd, jobsSeedCmd)
	rootCmd.AddCommand(jobsCmd)
}
