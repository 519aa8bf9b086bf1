package commands

import (
	"context"
	"fmt"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/app"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/catalog"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/infrastructure/persistence"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// CatalogCommandHandler seeds programs, subjects and instructors
type CatalogCommandHandler struct {
	programService    catalog.ProgramService
	subjectService    catalog.SubjectService
	instructorService catalog.InstructorService
	programRepo       catalog.ProgramRepository
	subjectRepo       catalog.SubjectRepository
	logger            logger.Logger
}

// newCatalogCommandHandler builds the catalog services on top of env's database
func newCatalogCommandHandler(env *environment) (*CatalogCommandHandler, error) {
	programRepo, err := persistence.NewGormProgramRepository(env.db, env.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create program repository: %w", err)
	}

	subjectRepo, err := persistence.NewGormSubjectRepository(env.db, env.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create subject repository: %w", err)
	}

	instructorRepo, err := persistence.NewGormInstructorRepository(env.db, env.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create instructor repository: %w", err)
	}

	programService, err := app.NewProgramService(programRepo, env.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create program service: %w", err)
	}

	subjectService, err := app.NewSubjectService(subjectRepo, programRepo, env.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create subject service: %w", err)
	}

	instructorService, err := app.NewInstructorService(instructorRepo, subjectRepo, env.cfg.Tutoring.DefaultHourlyRate, env.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create instructor service: %w", err)
	}

	return &CatalogCommandHandler{
		programService:    programService,
		subjectService:    subjectService,
		instructorService: instructorService,
		programRepo:       programRepo,
		subjectRepo:       subjectRepo,
		logger:            env.logger,
	}, nil
}

// AddProgramCmd registers a program
func (h *CatalogCommandHandler) AddProgramCmd(cmd *cobra.Command, _ []string) error {
	program := &catalog.Program{
		Code:        mustString(cmd, "code"),
		Name:        mustString(cmd, "name"),
		Faculty:     mustString(cmd, "faculty"),
		Description: mustString(cmd, "description"),
	}

	created, err := h.programService.Register(cmd.Context(), program)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "program %s %s\n", created.Code, created.ID)
	return nil
}

// AddSubjectCmd registers a subject in the program named by --program-code
func (h *CatalogCommandHandler) AddSubjectCmd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	program, err := h.programRepo.GetByCode(ctx, mustString(cmd, "program-code"))
	if err != nil {
		return fmt.Errorf("failed to resolve program: %w", err)
	}

	credits, _ := cmd.Flags().GetInt("credits")
	semester, _ := cmd.Flags().GetInt("semester")

	subject := &catalog.Subject{
		Code:        mustString(cmd, "code"),
		Name:        mustString(cmd, "name"),
		Description: mustString(cmd, "description"),
		Department:  mustString(cmd, "department"),
		Credits:     credits,
		ProgramID:   program.ID,
		Semester:    semester,
	}

	created, err := h.subjectService.Register(ctx, subject)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "subject %s %s\n", created.Code, created.ID)
	return nil
}

// AddInstructorCmd registers an instructor tutoring the subjects named by --subject-code
func (h *CatalogCommandHandler) AddInstructorCmd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	codes, _ := cmd.Flags().GetStringSlice("subject-code")
	subjectIDs, err := h.resolveSubjects(ctx, codes)
	if err != nil {
		return err
	}

	experience, _ := cmd.Flags().GetInt("experience-years")
	rate, _ := cmd.Flags().GetFloat64("hourly-rate")
	verified, _ := cmd.Flags().GetBool("verified")

	instructor := &catalog.Instructor{
		FirstName:       mustString(cmd, "first-name"),
		LastName:        mustString(cmd, "last-name"),
		Email:           mustString(cmd, "email"),
		Department:      mustString(cmd, "department"),
		Specialization:  mustString(cmd, "specialization"),
		ExperienceYears: experience,
		HourlyRate:      rate,
		SubjectIDs:      subjectIDs,
		IsVerified:      verified,
	}

	created, err := h.instructorService.Register(ctx, instructor)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "instructor %s %s\n", created.Email, created.ID)
	return nil
}

func (h *CatalogCommandHandler) resolveSubjects(ctx context.Context, codes []string) ([]string, error) {
	ids := make([]string, 0, len(codes))
	for _, code := range codes {
		subject, err := h.subjectRepo.GetByCode(ctx, code)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve subject %s: %w", code, err)
		}
		ids = append(ids, subject.ID)
	}
	return ids, nil
}

func mustString(cmd *cobra.Command, name string) string {
	value, _ := cmd.Flags().GetString(name)
	return value
}

// withCatalog opens the environment for the duration of run
func withCatalog(run func(h *CatalogCommandHandler, cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		env, err := openEnvironment(cmd)
		if err != nil {
			return err
		}
		defer env.close()

		handler, err := newCatalogCommandHandler(env)
		if err != nil {
			return err
		}
		return run(handler, cmd, args)
	}
}

// InitCatalogCommands registers the catalog command group
func InitCatalogCommands(rootCmd *cobra.Command) error {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Seed programs, subjects and instructors",
	}

	addProgramCmd := &cobra.Command{
		Use:   "add-program",
		Short: "Register an academic program",
		RunE:  withCatalog((*CatalogCommandHandler).AddProgramCmd),
	}
	addProgramCmd.Flags().String("code", "", "Program code, e.g. ISW")
	addProgramCmd.Flags().String("name", "", "Program name")
	addProgramCmd.Flags().String("faculty", "", "Faculty")
	addProgramCmd.Flags().String("description", "", "Description")

	addSubjectCmd := &cobra.Command{
		Use:   "add-subject",
		Short: "Register a subject within a program",
		RunE:  withCatalog((*CatalogCommandHandler).AddSubjectCmd),
	}
	addSubjectCmd.Flags().String("code", "", "Subject code, e.g. MAT101")
	addSubjectCmd.Flags().String("name", "", "Subject name")
	addSubjectCmd.Flags().String("description", "", "Description")
	addSubjectCmd.Flags().String("department", "", "Department")
	addSubjectCmd.Flags().String("program-code", "", "Code of the owning program")
	addSubjectCmd.Flags().Int("credits", 3, "Credits")
	addSubjectCmd.Flags().Int("semester", 1, "Semester")

	addInstructorCmd := &cobra.Command{
		Use:   "add-instructor",
		Short: "Register an instructor",
		RunE:  withCatalog((*CatalogCommandHandler).AddInstructorCmd),
	}
	addInstructorCmd.Flags().String("first-name", "", "First name")
	addInstructorCmd.Flags().String("last-name", "", "Last name")
	addInstructorCmd.Flags().String("email", "", "Email")
	addInstructorCmd.Flags().String("department", "", "Department")
	addInstructorCmd.Flags().String("specialization", "", "Specialization")
	addInstructorCmd.Flags().Int("experience-years", 0, "Years of experience")
	addInstructorCmd.Flags().Float64("hourly-rate", 0, "Hourly rate; 0 uses the configured default")
	addInstructorCmd.Flags().StringSlice("subject-code", nil, "Code of a subject the instructor tutors (repeatable)")
	addInstructorCmd.Flags().Bool("verified", false, "Mark the instructor as verified")

	for _, c := range []struct {
		cmd   *cobra.Command
		flags []string
	}{
		{addProgramCmd, []string{"code", "name"}},
		{addSubjectCmd, []string{"code", "name", "program-code"}},
		{addInstructorCmd, []string{"first-name", "last-name", "email", "department"}},
	} {
		for _, flag := range c.flags {
			if err := c.cmd.MarkFlagRequired(flag); err != nil {
				return fmt.Errorf("failed to mark %s required: %w", flag, err)
			}
		}
		catalogCmd.AddCommand(c.cmd)
	}

	rootCmd.AddCommand(catalogCmd)
	return nil
}
