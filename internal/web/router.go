package web

import (
	"errors"
	"fmt"
	"image"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kavya-marri/portfolio-demos/internal/agro"
	"github.com/kavya-marri/portfolio-demos/internal/imaging"
	"github.com/kavya-marri/portfolio-demos/internal/logger"
	"github.com/kavya-marri/portfolio-demos/internal/metrics"
)

// uploadField is the multipart field holding the image.
const uploadField = "image"

var allowedUploadExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// DemoRouter serves the two interactive project demos.
type DemoRouter struct {
	MaxUploadBytes int64
	PreviewMaxDim  int
	Metrics        *metrics.Metrics
}

// Register mounts the demo routes on the given group.
func (r *DemoRouter) Register(group *gin.RouterGroup) {
	if group == nil {
		return
	}
	group.GET("/crops", r.handleCrops)
	group.POST("/crop", r.handleCrop)
	group.POST("/edges", r.handleEdges)
	group.POST("/edges.png", r.handleEdgesPNG)
}

func (r *DemoRouter) handleCrops(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"crops": agro.Crops()})
}

func (r *DemoRouter) handleCrop(c *gin.Context) {
	req := defaultCropRequest()
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reading := req.reading()
	rec := agro.Recommend(reading)
	if r.Metrics != nil {
		r.Metrics.ObserveRecommendation(string(rec.Crop), rec.Notes)
	}
	logger.L().Debug("crop recommended", "crop", rec.Crop, "notes", len(rec.Notes))

	c.JSON(http.StatusOK, cropResponse{Recommendation: rec, Reading: reading})
}

func (r *DemoRouter) handleEdges(c *gin.Context) {
	img, ok := r.readUpload(c)
	if !ok {
		return
	}

	edges, err := imaging.EncodePNG(r.filter(img))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	original, err := imaging.PreviewEncoded(img, r.PreviewMaxDim)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, edgesResponse{
		Original: panel{Caption: CaptionOriginal, EncodedImage: original},
		Edges:    panel{Caption: CaptionEdges, EncodedImage: edges},
	})
}

func (r *DemoRouter) handleEdgesPNG(c *gin.Context) {
	img, ok := r.readUpload(c)
	if !ok {
		return
	}

	data, err := imaging.PNGBytes(r.filter(img))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, imaging.MimePNG, data)
}

// filter runs the edge filter and records its cost.
func (r *DemoRouter) filter(img image.Image) *image.Gray {
	start := time.Now()
	out := imaging.EdgeMagnitude(img)
	if r.Metrics != nil {
		b := out.Bounds()
		r.Metrics.ObserveFilter(b.Dx(), b.Dy(), time.Since(start))
	}
	return out
}

// readUpload decodes the uploaded image, writing an error response and
// returning false when the upload is missing, too large or undecodable.
func (r *DemoRouter) readUpload(c *gin.Context) (image.Image, bool) {
	if r.MaxUploadBytes > 0 {
		if c.Request.ContentLength > r.MaxUploadBytes {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": tooLargeMessage(r.MaxUploadBytes)})
			return nil, false
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, r.MaxUploadBytes)
	}

	fh, err := c.FormFile(uploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": tooLargeMessage(r.MaxUploadBytes)})
			return nil, false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("missing %q upload: %v", uploadField, err)})
		return nil, false
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedUploadExts[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unsupported file type %q", ext)})
		return nil, false
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	defer f.Close()

	img, err := imaging.Decode(f)
	if err != nil {
		logger.L().Warn("rejected upload", "filename", fh.Filename, "err", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return img, true
}

func tooLargeMessage(limit int64) string {
	return fmt.Sprintf("upload exceeds %d bytes", limit)
}
