package v1

import (
	"net/http"

	"github.com/OscarMeza24/SistemaDeTurorias/internal/domain/catalog"
	"github.com/OscarMeza24/SistemaDeTurorias/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// CatalogHandler registers and lists one kind of catalog entry
type CatalogHandler interface {
	Register(ctx *gin.Context)
	List(ctx *gin.Context)
}

type programHandler struct {
	programService catalog.ProgramService
	logger         logger.Logger
}

// NewProgramHandler creates the handler behind /registro_carreras/
func NewProgramHandler(programService catalog.ProgramService, logger logger.Logger) CatalogHandler {
	return &programHandler{
		programService: programService,
		logger:         logger,
	}
}

// Register handles the POST request to register a program
// @Summary Register an academic program
// @Tags Catalog
// @Accept json
// @Produce json
// @Param requestBody body RegisterProgramRequest true "Program"
// @Success 201 {object} ProgramResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /registro_carreras/ [post]
func (handler *programHandler) Register(ctx *gin.Context) {
	var request RegisterProgramRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, "invalid program data: %v", err)
		return
	}

	if err := request.Validate(); err != nil {
		badRequest(ctx, "%v", err)
		return
	}

	program, err := handler.programService.Register(ctx.Request.Context(), request.toDomain())
	if err != nil {
		respondError(ctx, handler.logger, "failed to register program", err)
		return
	}

	ctx.JSON(http.StatusCreated, newProgramResponse(program))
}

// List handles the GET request to list programs
// @Summary List academic programs
// @Tags Catalog
// @Produce json
// @Param name query string false "Name substring"
// @Param code query string false "Program code"
// @Param faculty query string false "Faculty"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "name, code or date_time_created"
// @Param sortOrder query string false "asc or desc"
// @Success 200 {array} ProgramResponse
// @Failure 400 {object} ErrorResponse
// @Router /registro_carreras/ [get]
func (handler *programHandler) List(ctx *gin.Context) {
	var params ProgramListQuery
	if err := ctx.ShouldBindQuery(&params); err != nil {
		badRequest(ctx, "invalid query: %v", err)
		return
	}

	query := params.toDomain()
	if err := query.Validate(); err != nil {
		badRequest(ctx, "%v", err)
		return
	}

	programs, err := handler.programService.List(ctx.Request.Context(), query)
	if err != nil {
		respondError(ctx, handler.logger, "failed to list programs", err)
		return
	}

	response := make([]ProgramResponse, 0, len(programs))
	for _, program := range programs {
		response = append(response, newProgramResponse(program))
	}

	ctx.JSON(http.StatusOK, response)
}

type subjectHandler struct {
	subjectService catalog.SubjectService
	logger         logger.Logger
}

// NewSubjectHandler creates the handler behind /registro_asignaturas/
func NewSubjectHandler(subjectService catalog.SubjectService, logger logger.Logger) CatalogHandler {
	return &subjectHandler{
		subjectService: subjectService,
		logger:         logger,
	}
}

// Register handles the POST request to register a subject
// @Summary Register a subject within an existing program
// @Tags Catalog
// @Accept json
// @Produce json
// @Param requestBody body RegisterSubjectRequest true "Subject"
// @Success 201 {object} SubjectResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /registro_asignaturas/ [post]
func (handler *subjectHandler) Register(ctx *gin.Context) {
	var request RegisterSubjectRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, "invalid subject data: %v", err)
		return
	}

	if err := request.Validate(); err != nil {
		badRequest(ctx, "%v", err)
		return
	}

	subject, err := handler.subjectService.Register(ctx.Request.Context(), request.toDomain())
	if err != nil {
		respondError(ctx, handler.logger, "failed to register subject", err)
		return
	}

	ctx.JSON(http.StatusCreated, newSubjectResponse(subject))
}

// List handles the GET request to list subjects
func (handler *subjectHandler) List(ctx *gin.Context) {
	var params SubjectListQuery
	if err := ctx.ShouldBindQuery(&params); err != nil {
		badRequest(ctx, "invalid query: %v", err)
		return
	}

	query := params.toDomain()
	if err := query.Validate(); err != nil {
		badRequest(ctx, "%v", err)
		return
	}

	subjects, err := handler.subjectService.List(ctx.Request.Context(), query)
	if err != nil {
		respondError(ctx, handler.logger, "failed to list subjects", err)
		return
	}

	response := make([]SubjectResponse, 0, len(subjects))
	for _, subject := range subjects {
		response = append(response, newSubjectResponse(subject))
	}

	ctx.JSON(http.StatusOK, response)
}

type instructorHandler struct {
	instructorService catalog.InstructorService
	logger            logger.Logger
}

// NewInstructorHandler creates the handler behind /registro_docentes/
func NewInstructorHandler(instructorService catalog.InstructorService, logger logger.Logger) CatalogHandler {
	return &instructorHandler{
		instructorService: instructorService,
		logger:            logger,
	}
}

// Register handles the POST request to register an instructor
// @Summary Register an instructor and the subjects they tutor
// @Tags Catalog
// @Accept json
// @Produce json
// @Param requestBody body RegisterInstructorRequest true "Instructor"
// @Success 201 {object} InstructorResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /registro_docentes/ [post]
func (handler *instructorHandler) Register(ctx *gin.Context) {
	var request RegisterInstructorRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		badRequest(ctx, "invalid instructor data: %v", err)
		return
	}

	if err := request.Validate(); err != nil {
		badRequest(ctx, "%v", err)
		return
	}

	instructor, err := handler.instructorService.Register(ctx.Request.Context(), request.toDomain())
	if err != nil {
		respondError(ctx, handler.logger, "failed to register instructor", err)
		return
	}

	ctx.JSON(http.StatusCreated, newInstructorResponse(instructor))
}

// List handles the GET request to list instructors, optionally those tutoring one subject
func (handler *instructorHandler) List(ctx *gin.Context) {
	var params InstructorListQuery
	if err := ctx.ShouldBindQuery(&params); err != nil {
		badRequest(ctx, "invalid query: %v", err)
		return
	}

	query := params.toDomain()
	if err := query.Validate(); err != nil {
		badRequest(ctx, "%v", err)
		return
	}

	instructors, err := handler.instructorService.List(ctx.Request.Context(), query)
	if err != nil {
		respondError(ctx, handler.logger, "failed to list instructors", err)
		return
	}

	response := make([]InstructorResponse, 0, len(instructors))
	for _, instructor := range instructors {
		response = append(response, newInstructorResponse(instructor))
	}

	ctx.JSON(http.StatusOK, response)
}
