package stdimg

import (
	"encoding/binary"
	"math"

	"github.com/klauspost/compress/zstd"

	"github.com/Fepozopo/rgbedit/pkg/haar"
)

// CompressionStats describes one run of the wavelet compressor.
type CompressionStats struct {
	GridSize     int     // side of the padded square
	Coefficients int     // coefficients across all three channels
	Distinct     int     // distinct coefficient magnitudes
	Threshold    float64 // magnitudes at or below this were zeroed
	Zeroed       int     // coefficients that are zero after thresholding
	EncodedBytes int     // zstd size of the thresholded coefficient stream
}

// Ratio returns the fraction of coefficients that survived thresholding.
func (s CompressionStats) Ratio() float64 {
	if s.Coefficients == 0 {
		return 0
	}
	return float64(s.Coefficients-s.Zeroed) / float64(s.Coefficients)
}

// Compress drops the smallest percent of distinct Haar coefficient magnitudes and
// reconstructs the image. percent 0 is lossless; percent 100 yields black.
func Compress(img *Image, percent int) *Image {
	out, _ := compress(img, percent, false)
	return out
}

// CompressWithStats is Compress plus a report of what was discarded, including the
// entropy-coded size of the surviving coefficients.
func CompressWithStats(img *Image, percent int) (*Image, CompressionStats) {
	return compress(img, percent, true)
}

func compress(img *Image, percent int, withStats bool) (*Image, CompressionStats) {
	var stats CompressionStats
	if img.Empty() {
		return NewImage(img.height, img.width), stats
	}

	n := haar.GridSize(img.height, img.width)
	grids := channelGrids(img, n)
	for _, g := range grids {
		haar.Forward(g)
	}

	set := haar.Magnitudes(grids[:]...)
	threshold := haar.Percentile(set, percent)
	for _, g := range grids {
		stats.Zeroed += haar.Zero(g, threshold)
	}
	stats.GridSize = n
	stats.Coefficients = 3 * n * n
	stats.Distinct = len(set)
	stats.Threshold = threshold
	if withStats {
		stats.EncodedBytes = encodedSize(grids)
	}

	for _, g := range grids {
		haar.Inverse(g)
	}
	out := NewImageFunc(img.height, img.width, func(i, j int) Pixel {
		return NewPixel(
			int(math.Round(grids[0][i][j])),
			int(math.Round(grids[1][i][j])),
			int(math.Round(grids[2][i][j])),
		)
	})
	return out, stats
}

// channelGrids samples img into three n x n grids. Cells past the image edge read
// the black sentinel, which zero-pads the square.
func channelGrids(img *Image, n int) [3]haar.Grid {
	grids := [3]haar.Grid{haar.NewGrid(n), haar.NewGrid(n), haar.NewGrid(n)}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			p := img.Pixel(i, j)
			grids[0][i][j] = float64(p.r)
			grids[1][i][j] = float64(p.g)
			grids[2][i][j] = float64(p.b)
		}
	}
	return grids
}

// encodedSize serializes the coefficients as little-endian float32 and returns the
// zstd-compressed length.
func encodedSize(grids [3]haar.Grid) int {
	n := grids[0].Size()
	raw := make([]byte, 0, 3*n*n*4)
	for _, g := range grids {
		for _, row := range g {
			for _, v := range row {
				raw = binary.LittleEndian.AppendUint32(raw, math.Float32bits(float32(v)))
			}
		}
	}
	enc, err := zstd.NewWriter(nil,
		zstd.WithEncoderConcurrency(1),
		zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
	)
	if err != nil {
		return len(raw)
	}
	defer enc.Close()
	return len(enc.EncodeAll(raw, nil))
}
