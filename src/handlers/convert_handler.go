package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/username/chainfolio/backend/src/config"
	"github.com/username/chainfolio/backend/src/logger"
	"github.com/username/chainfolio/backend/src/parsers"
	"github.com/username/chainfolio/backend/src/security/validation"
	"github.com/username/chainfolio/backend/src/services"
	"github.com/username/chainfolio/backend/src/utils"
)

// Multipart field names the convert endpoint understands. Files posted under
// "files" get their category auto-detected from header shape.
var categoryFields = map[string]parsers.Category{
	"native":   parsers.CategoryNative,
	"erc20":    parsers.CategoryToken,
	"internal": parsers.CategoryInternal,
	"erc721":   parsers.CategoryNft721,
	"erc1155":  parsers.CategoryNft1155,
	"files":    parsers.CategoryUnknown,
}

type ConvertHandler struct {
	conversionService services.ConversionService
}

func NewConvertHandler(service services.ConversionService) *ConvertHandler {
	return &ConvertHandler{
		conversionService: service,
	}
}

func (h *ConvertHandler) HandleConvert(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(config.Cfg.MaxUploadSizeBytes); err != nil {
		logger.L.Warn("Failed to parse multipart form or request too large", "error", err, "limit", config.Cfg.MaxUploadSizeBytes)
		utils.SendJSONError(w, fmt.Sprintf("Failed to parse form or request too large (max %d MB)", config.Cfg.MaxUploadSizeBytes/(1024*1024)), http.StatusBadRequest)
		return
	}

	var files []services.CategoryFile
	var openedFiles []multipart.File
	defer func() {
		for _, f := range openedFiles {
			f.Close()
		}
	}()

	for field, category := range categoryFields {
		for _, fileHeader := range r.MultipartForm.File[field] {
			file, err := fileHeader.Open()
			if err != nil {
				logger.L.Warn("Failed to open uploaded file", "field", field, "filename", fileHeader.Filename, "error", err)
				utils.SendJSONError(w, fmt.Sprintf("Failed to read uploaded file %s", fileHeader.Filename), http.StatusBadRequest)
				return
			}
			openedFiles = append(openedFiles, file)

			if err := validation.ValidateClientContentType(fileHeader.Header.Get("Content-Type")); err != nil {
				utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
				return
			}
			if _, err := validation.ValidateFileContentByMagicBytes(file); err != nil {
				logger.L.Warn("File content validation failed", "filename", fileHeader.Filename, "error", err)
				utils.SendJSONError(w, err.Error(), http.StatusBadRequest)
				return
			}

			files = append(files, services.CategoryFile{
				Category: category,
				Reader:   file,
				Name:     fileHeader.Filename,
			})
		}
	}

	if len(files) == 0 {
		utils.SendJSONError(w, "No export files provided. Use fields: native, erc20, internal, erc721, erc1155 or files.", http.StatusBadRequest)
		return
	}

	label := r.FormValue("label")
	if label == "" {
		label = fmt.Sprintf("import of %d file(s)", len(files))
	}

	logger.L.Info("Processing conversion request", "label", label, "files", len(files))
	result, err := h.conversionService.ProcessConversion(files, label)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrParsingFailed):
			logger.L.Warn("Conversion failed due to CSV parsing errors", "error", err)
			utils.SendJSONError(w, fmt.Sprintf("Error parsing CSV file: %v", err), http.StatusBadRequest)
		case errors.Is(err, services.ErrNotConfigured):
			logger.L.Warn("Conversion rejected, missing configuration", "error", err)
			utils.SendJSONError(w, err.Error(), http.StatusPreconditionFailed)
		default:
			logger.L.Error("Internal error processing conversion", "error", err)
			utils.SendJSONError(w, "An internal error occurred while processing the files. Please try again later.", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		logger.L.Error("Error encoding JSON response for conversion result", "error", err)
	}
}
