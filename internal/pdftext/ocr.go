package pdftext

import (
	"errors"
	"io"
	"os"
	"os/exec"

	"github.com/pfrederiksen/hindsight/internal/logger"
)

// OCRToTemp runs ocrmypdf on src and returns the path of the OCRed copy.
// When ocrmypdf is missing or fails, the original path is returned with
// false so the pipeline can continue on the un-OCRed file. The caller owns
// the temp file when ok is true.
func OCRToTemp(src string) (string, bool) {
	tmp, err := os.CreateTemp("", "hindsight-ocr-*.pdf")
	if err != nil {
		logger.Warn("creating OCR temp file failed; proceeding without OCR", logger.Fields{
			"error": err.Error(),
		})
		return src, false
	}
	out := tmp.Name()
	tmp.Close()

	cmd := exec.Command("ocrmypdf", "--deskew", "--clean", "--force-ocr", src, out)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	if err := cmd.Run(); err != nil {
		os.Remove(out)
		if errors.Is(err, exec.ErrNotFound) {
			logger.Warn("ocrmypdf not found; proceeding without OCR", nil)
		} else {
			logger.Warn("ocrmypdf failed; proceeding without OCR", logger.Fields{
				"path":  src,
				"error": err.Error(),
			})
		}
		return src, false
	}

	return out, true
}
