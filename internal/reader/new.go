package reader

import (
	"golang.org/x/text/encoding/korean"

	"github.com/nguyentantai21042004/transcript-flow/internal/logger"
)

type implReader struct {
	candidates []candidate
	logger     logger.Logger
}

// New creates a Reader that tries UTF-8 first, then the legacy Korean code
// pages. CP949 and EUC-KR share one decoder table (x/text implements the
// Windows-949 superset) but both names stay in the candidate list so error
// messages report the full set that was tried.
func New(log logger.Logger) Reader {
	return &implReader{
		candidates: []candidate{
			{name: "utf-8", decode: decodeUTF8},
			{name: "cp949", decode: decodeKorean(korean.EUCKR)},
			{name: "euc-kr", decode: decodeKorean(korean.EUCKR)},
		},
		logger: log,
	}
}
