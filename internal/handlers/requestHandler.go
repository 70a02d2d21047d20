package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/akolanti/SheetAPI/internal/adapter"
	"github.com/akolanti/SheetAPI/internal/adapter/utils"
	"github.com/akolanti/SheetAPI/internal/config"
	"github.com/akolanti/SheetAPI/internal/domain/jobModel"
	"github.com/akolanti/SheetAPI/pkg/logger_i"
)

var logRH *logger_i.Logger

type newJobData struct {
	id       string
	traceId  string
	question string
	files    []jobModel.UploadedFileRef
}

func GetHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// GetStatusHandler godoc
// @Summary      Get job status
// @Description  Retrieves the current status of an analysis job, including the spreadsheet summary and AI analysis once complete.
// @Tags         Job Status
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  api.JobResponse   "The current status of the job"
// @Failure      404  {object}  api.JobResponse   "Job not found"
// @Router       /status/{id} [get]
func GetStatusHandler(w http.ResponseWriter, r *http.Request) {
	if validateContext(r.Context()) {
		idString := utils.GetChiURLParam(r, "id")
		result, isFound := validateId(idString, r.Context().Value(config.TRACE_ID_KEY).(string))

		logRH.Debug("Get Status Request:", "URL path", r.URL.Path)
		if !isFound {
			WriteErrorResponse(w, http.StatusNotFound, idString, "Job not found")
			return
		}

		writeJsonResponse(w, http.StatusOK, adapter.ToAPIResponse(result))
	}
}

// PostAnalyzeHandler handles the upload of spreadsheet files for analysis.
// @Summary      Upload spreadsheets for analysis
// @Description  Receives 1..N spreadsheet files plus an optional question via multipart/form-data, spools them to a temp directory and queues an analysis job.
// @Tags         Analysis
// @Accept       multipart/form-data
// @Produce      json
// @Param        files     formData  file    true   "One or more .xlsx/.xls files"
// @Param        question  formData  string  false  "Optional question about the data"
// @Success      202  {object}  api.InitJobResponse "Accepted - returns job id"
// @Failure      400  {object}  api.JobResponse "Bad Request - no files or payload too large"
// @Failure      500  {object}  api.JobResponse "Internal Server Error - storage failure"
// @Router       /analyze [post]
func PostAnalyzeHandler(w http.ResponseWriter, r *http.Request) {
	if !validateContext(r.Context()) {
		logRH.Warn("Invalid Context by request ", r.RemoteAddr)
		return
	}

	targetDir, errString := getTargetDirectory()
	if errString != "" {
		logRH.Error("Couldn't get target directory :", "err", errString)
		WriteErrorResponse(w, http.StatusInternalServerError, "", errString)
		return
	}

	if err := r.ParseMultipartForm(config.MaxUploadSize); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "", "Files too large or bad request")
		return
	}

	uploads := r.MultipartForm.File["files"]
	if len(uploads) == 0 {
		WriteErrorResponse(w, http.StatusBadRequest, "", "At least one spreadsheet file is required")
		return
	}
	if len(uploads) > config.DefaultMaxFiles {
		//soft limit only - log it and let the batch run
		logRH.Warn("Upload exceeds recommended file count", "files", len(uploads), "recommended", config.DefaultMaxFiles)
	}

	var refs []jobModel.UploadedFileRef
	for _, header := range uploads {
		ref, err := spoolUpload(header, targetDir)
		if err != nil {
			cleanupRefs(refs)
			WriteErrorResponse(w, http.StatusInternalServerError, header.Filename, "Storage error")
			return
		}
		refs = append(refs, ref)
	}

	newJob := newJobData{
		id:       utils.GetNewUUID(),
		traceId:  r.Context().Value(config.TRACE_ID_KEY).(string),
		question: r.FormValue("question"),
		files:    refs,
	}
	CreateNewJob(newJob)
	writeJsonResponse(w, http.StatusAccepted, adapter.ToInitJobResponse(newJob.id))
}

func spoolUpload(header *multipart.FileHeader, targetDir string) (jobModel.UploadedFileRef, error) {
	fileReader, err := header.Open()
	if err != nil {
		return jobModel.UploadedFileRef{}, err
	}
	defer fileReader.Close()

	//prefix with a timestamp so sibling uploads with the same name can't collide
	tempName := fmt.Sprintf("%d-%s", time.Now().UnixNano(), filepath.Base(header.Filename))
	tempFilePath := filepath.Join(targetDir, tempName)
	destinationFileWriter, err := os.Create(tempFilePath)
	if err != nil {
		return jobModel.UploadedFileRef{}, err
	}
	defer destinationFileWriter.Close()

	if _, err := io.Copy(destinationFileWriter, fileReader); err != nil {
		os.Remove(tempFilePath)
		return jobModel.UploadedFileRef{}, err
	}
	return jobModel.UploadedFileRef{Name: header.Filename, Path: tempFilePath}, nil
}

func cleanupRefs(refs []jobModel.UploadedFileRef) {
	for _, ref := range refs {
		if err := os.Remove(ref.Path); err != nil {
			logRH.Error("Error removing spooled upload", "path", ref.Path, "err", err)
		}
	}
}
