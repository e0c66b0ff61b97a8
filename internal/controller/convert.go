package controller

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/visalhout/PagePair/internal/util"
	"github.com/visalhout/PagePair/pkg/pagepair"
)

type ConvertController struct {
	*baseController
}

type convertRequest struct {
	DPI        int    `form:"dpi" binding:"omitempty,gte=72,lte=600"`
	Quality    int    `form:"quality" binding:"omitempty,gte=50,lte=100"`
	GapPx      int    `form:"gapPx" binding:"omitempty,gte=0,lte=500"`
	SwapPages  bool   `form:"swapPages"`
	Format     string `form:"format" binding:"omitempty,imageFormat"`
	AlignBy    string `form:"alignBy" binding:"omitempty,alignMode"`
	Background string `form:"background" binding:"omitempty,oneof=white lightgray black"`
	Sharpen    bool   `form:"sharpen"`
}

type convertedFile struct {
	Id           string             `json:"id"`
	OriginalName string             `json:"originalName"`
	Ok           bool               `json:"ok"`
	OutputName   string             `json:"outputName,omitempty"`
	Metadata     *pagepair.Metadata `json:"metadata,omitempty"`
	FileUrl      string             `json:"fileUrl,omitempty"`
	PreviewUrl   string             `json:"previewUrl,omitempty"`
	Error        string             `json:"error,omitempty"`
}

func (cc ConvertController) outputDir() string {
	if dir := cc.app.Config.Convert.OutputDir; dir != "" {
		return dir
	}
	return pagepair.NewDefaultConfig().OutputDir
}

func (cc ConvertController) toOptions(req convertRequest) (*pagepair.Options, error) {
	opts := pagepair.NewDefaultOptions()
	opts.DPI = cc.app.Config.Convert.DefaultDPI
	opts.Quality = cc.app.Config.Convert.DefaultQuality

	if req.DPI != 0 {
		opts.DPI = req.DPI
	}
	if req.Quality != 0 {
		opts.Quality = req.Quality
	}
	opts.GapPx = req.GapPx
	opts.SwapPages = req.SwapPages
	opts.Sharpen = req.Sharpen

	if req.Format != "" {
		opts.Format = pagepair.Format(strings.ToLower(req.Format))
	}
	if req.AlignBy != "" {
		opts.AlignBy = pagepair.AlignMode(strings.ToLower(req.AlignBy))
	}

	bg, err := pagepair.ParseBackground(req.Background)
	if err != nil {
		return nil, err
	}
	opts.Background = bg

	return opts, nil
}

// Convert accepts a multipart batch of PDFs, runs the side-by-side pipeline
// on each of them and responds with one outcome per uploaded file. A failing
// file never fails the request.
func (cc ConvertController) Convert(ctx *gin.Context) {
	var req convertRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid conversion options", util.GenerateErrorMessages(err), nil)
		return
	}

	opts, err := cc.toOptions(req)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid conversion options", util.GenerateErrorMessages(err, "background"), nil)
		return
	}

	form, err := ctx.MultipartForm()
	if err != nil {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid multipart form", util.GenerateErrorMessages(err), nil)
		return
	}

	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		util.ResponseFailed(ctx, http.StatusBadRequest, "No files uploaded", util.GenerateErrorMessages(errors.New("at least one pdf file is required"), "files"), nil)
		return
	}
	if maxFiles := cc.app.Config.Convert.MaxBatchFiles; len(fileHeaders) > maxFiles {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Too many files",
			util.GenerateErrorMessages(fmt.Errorf("a batch may contain at most %d files", maxFiles), "files"), nil)
		return
	}

	maxBytes := int64(cc.app.Config.Convert.MaxUploadMB) << 20
	files := make([]pagepair.File, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		if fh.Size > maxBytes {
			util.ResponseFailed(ctx, http.StatusRequestEntityTooLarge, "File too large",
				util.GenerateErrorMessages(fmt.Errorf("%s exceeds the %d MiB upload limit", fh.Filename, cc.app.Config.Convert.MaxUploadMB), "files"), nil)
			return
		}

		file, err := fh.Open()
		if err != nil {
			util.ResponseFailed(ctx, http.StatusInternalServerError, "Error reading uploaded file", util.GenerateErrorMessages(err), nil)
			return
		}

		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			util.ResponseFailed(ctx, http.StatusInternalServerError, "Error reading uploaded file", util.GenerateErrorMessages(err), nil)
			return
		}

		files = append(files, pagepair.File{Name: fh.Filename, Data: data})
	}

	batchId, err := gonanoid.New()
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Error creating batch id", util.GenerateErrorMessages(err), nil)
		return
	}

	batchDir := filepath.Join(cc.outputDir(), batchId)
	if err := os.MkdirAll(batchDir, 0755); err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Error creating batch directory", util.GenerateErrorMessages(err), nil)
		return
	}

	outcomes := pagepair.ConvertAll(files, opts)

	converted := make([]convertedFile, 0, len(outcomes))
	succeeded := 0
	for _, outcome := range outcomes {
		entry := convertedFile{
			Id:           uuid.NewString(),
			OriginalName: outcome.OriginalName,
			Ok:           outcome.Ok(),
		}

		if !outcome.Ok() {
			entry.Error = outcome.Err.Error()
			cc.app.Logger.Debugf("Conversion failed for %s: %v", outcome.OriginalName, outcome.Err)
			converted = append(converted, entry)
			continue
		}

		result := outcome.Result
		if result.Meta.Pages > 2 {
			cc.app.Logger.Debugf("%s has %d pages, only the first two were used", outcome.OriginalName, result.Meta.Pages)
		}

		outPath := filepath.Join(batchDir, result.OutputName)
		if err := os.WriteFile(outPath, result.Data, 0644); err != nil {
			entry.Ok = false
			entry.Error = fmt.Sprintf("failed to store output: %v", err)
			converted = append(converted, entry)
			continue
		}

		if cc.app.S3 != nil {
			if _, err := util.UploadResultToS3(ctx, result, &util.FileUploadOptions{
				DirectoryPath: util.GetBatchDirectoryPath(batchId),
				Bucket:        cc.app.Config.Minio.BUCKET,
				S3:            cc.app.S3,
			}); err != nil {
				// Local copy is authoritative, object storage is best effort
				cc.app.Logger.Warnf("Failed to upload %s to object storage: %v", result.OutputName, err)
			}
		}

		meta := result.Meta
		entry.OutputName = result.OutputName
		entry.Metadata = &meta
		entry.FileUrl = fmt.Sprintf("/api/v1/batches/%s/files/%s", batchId, result.OutputName)
		entry.PreviewUrl = fmt.Sprintf("/api/v1/batches/%s/files/%s/preview", batchId, result.OutputName)
		succeeded++

		converted = append(converted, entry)
	}

	data := gin.H{
		"batchId":   batchId,
		"total":     len(converted),
		"succeeded": succeeded,
		"failed":    len(converted) - succeeded,
		"files":     converted,
	}
	if succeeded > 0 {
		data["zipUrl"] = fmt.Sprintf("/api/v1/batches/%s/zip", batchId)
	}

	util.ResponseSuccess(ctx, data)
}

func (cc ConvertController) resolveOutput(ctx *gin.Context) (string, bool) {
	batchId := ctx.Params.ByName("batchId")
	name := ctx.Params.ByName("name")

	if batchId == "" || name == "" ||
		batchId != filepath.Base(batchId) || name != filepath.Base(name) ||
		strings.Contains(batchId, "..") || strings.Contains(name, "..") {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid file reference",
			util.GenerateErrorMessages(errors.New("invalid batch id or file name"), "batchId"), nil)
		return "", false
	}

	path := filepath.Join(cc.outputDir(), batchId, name)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		util.ResponseFailed(ctx, http.StatusNotFound, "File not found", util.GenerateErrorMessages(err), nil)
		return "", false
	}

	return path, true
}

func (cc ConvertController) ServeOutput(ctx *gin.Context) {
	path, ok := cc.resolveOutput(ctx)
	if !ok {
		return
	}

	ctx.File(path)
}

// ServeOutputPreview streams a width-bounded PNG preview of one converted
// file. The stored output keeps its full resolution.
func (cc ConvertController) ServeOutputPreview(ctx *gin.Context) {
	path, ok := cc.resolveOutput(ctx)
	if !ok {
		return
	}

	width := 1000
	if raw := ctx.Query("width"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 100 || parsed > 2000 {
			util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid preview width",
				util.GenerateErrorMessages(errors.New("width must be an integer between 100 and 2000"), "width"), nil)
			return
		}
		width = parsed
	}

	img, err := imaging.Open(path)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Error reading output image", util.GenerateErrorMessages(err), nil)
		return
	}

	thumb, err := pagepair.Thumbnail(img, width)
	if err != nil {
		util.ResponseFailed(ctx, http.StatusInternalServerError, "Error creating preview", util.GenerateErrorMessages(err), nil)
		return
	}

	ctx.Header("Content-Type", "image/png")
	if err := imaging.Encode(ctx.Writer, thumb, imaging.PNG); err != nil {
		cc.app.Logger.Debugf("Failed to stream preview for %s: %v", path, err)
	}
}

// DownloadZip streams every output of a batch as one deflate archive with a
// timestamped download name.
func (cc ConvertController) DownloadZip(ctx *gin.Context) {
	batchId := ctx.Params.ByName("batchId")
	if batchId == "" || batchId != filepath.Base(batchId) || strings.Contains(batchId, "..") {
		util.ResponseFailed(ctx, http.StatusBadRequest, "Invalid batch id",
			util.GenerateErrorMessages(errors.New("invalid batch id"), "batchId"), nil)
		return
	}

	batchDir := filepath.Join(cc.outputDir(), batchId)
	if _, err := os.Stat(batchDir); errors.Is(err, os.ErrNotExist) {
		util.ResponseFailed(ctx, http.StatusNotFound, "Batch not found", util.GenerateErrorMessages(err), nil)
		return
	}

	archiveName := pagepair.ArchiveName("pagepair", time.Now())
	ctx.Header("Content-Type", "application/zip")
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", archiveName))

	if err := pagepair.ZipDir(batchDir, ctx.Writer); err != nil {
		cc.app.Logger.Errorf("Failed to stream archive for batch %s: %v", batchId, err)
	}
}
