package pipeline

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/google/uuid"

	"github.com/plateaulabs/menuscan/internal/decode"
	"github.com/plateaulabs/menuscan/internal/extract"
	"github.com/plateaulabs/menuscan/internal/menu"
	"github.com/plateaulabs/menuscan/internal/ocr"
	"github.com/plateaulabs/menuscan/internal/regions"
)

// maxPDFPages caps uploads; a menu or price list beyond this is
// almost certainly the wrong document.
const maxPDFPages = 50

// decoded carries the output of the decoding stage: raw text for
// heuristic extraction, or trusted records from a structured import,
// plus image-path extras.
type decoded struct {
	text     string
	words    []ocr.Word
	img      image.Image
	embedded []image.Image // photos embedded in a PDF, page placement unknown
	records  []decode.Record
}

// Extract runs the full state machine for one input:
// Decoding → Extracting → (image only) RegionDetecting → Matching →
// Done, with Failed reachable from every step. An empty result set is
// reported through ErrNoItems alongside a partial Result carrying the
// raw text, so callers can show it for manual inspection.
func (p *Pipeline) Extract(ctx context.Context, in Input) (*Result, error) {
	return p.ExtractWithProgress(ctx, in, nil)
}

// ExtractWithProgress is Extract with stage transition callbacks.
func (p *Pipeline) ExtractWithProgress(ctx context.Context, in Input, progress ProgressFunc) (*Result, error) {
	start := time.Now()
	res := &Result{ID: uuid.New()}

	kind := in.Kind
	if kind == "" {
		detected, err := decode.DetectKind(in.Filename, in.Data)
		if err != nil {
			p.report(progress, StageFailed)
			return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, err)
		}
		kind = detected
	}
	res.Kind = kind

	p.report(progress, StageDecoding)
	decodeStart := time.Now()
	dec, err := p.decode(ctx, kind, in.Data)
	res.Processing.DecodeNs = time.Since(decodeStart).Nanoseconds()
	if err != nil {
		p.report(progress, StageFailed)
		return nil, err
	}
	res.RawText = dec.text

	p.report(progress, StageExtracting)
	extractStart := time.Now()
	if len(dec.records) > 0 {
		res.Items = importRecords(dec.records)
	} else {
		res.Items = extract.Run(dec.text)
	}
	res.Processing.ExtractNs = time.Since(extractStart).Nanoseconds()
	res.Currency = menu.DetectCurrency(dec.text)

	if len(res.Items) == 0 {
		res.Processing.TotalNs = time.Since(start).Nanoseconds()
		p.report(progress, StageFailed)
		return res, ErrNoItems
	}

	if kind == decode.KindPDF && len(dec.embedded) > 0 {
		p.report(progress, StageRegionDetecting)
		regionStart := time.Now()
		for _, img := range dec.embedded {
			b := img.Bounds()
			res.Regions = append(res.Regions, regions.Region{
				Width:  b.Dx(),
				Height: b.Dy(),
				Score:  1, // decoded verbatim from the document, not inferred
				Pixels: img,
			})
		}
		res.Processing.RegionsNs = time.Since(regionStart).Nanoseconds()
	}

	if kind == decode.KindImage && dec.img != nil {
		p.report(progress, StageRegionDetecting)
		regionStart := time.Now()
		res.Regions = p.detector.Detect(dec.img)
		res.Processing.RegionsNs = time.Since(regionStart).Nanoseconds()

		p.report(progress, StageMatching)
		matchStart := time.Now()
		p.matcher.Assign(res.Items, dec.words, res.Regions)
		res.Processing.MatchNs = time.Since(matchStart).Nanoseconds()
	}

	p.annotateReview(res.Items)
	res.OverallConfidence = extract.OverallConfidence(res.Items)
	res.Processing.TotalNs = time.Since(start).Nanoseconds()
	p.report(progress, StageDone)
	return res, nil
}

// decode dispatches to the format decoder under the configured
// wall-clock budget. The decoders themselves are synchronous; the
// budget is enforced around them so a hung external recognizer
// cannot stall the upload slot.
func (p *Pipeline) decode(ctx context.Context, kind decode.Kind, data []byte) (*decoded, error) {
	dctx, cancel := context.WithTimeout(ctx, p.cfg.DecodeTimeout)
	defer cancel()

	type outcome struct {
		dec *decoded
		err error
	}
	ch := make(chan outcome, 1)
	go func() {
		dec, err := p.decodeKind(dctx, kind, data)
		ch <- outcome{dec, err}
	}()

	select {
	case out := <-ch:
		if out.err != nil {
			if errors.Is(out.err, context.DeadlineExceeded) {
				return nil, fmt.Errorf("%w after %s", ErrDecodeTimeout, p.cfg.DecodeTimeout)
			}
			return nil, fmt.Errorf("%w: %v", ErrDecodeFailed, out.err)
		}
		return out.dec, nil
	case <-dctx.Done():
		if errors.Is(dctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %s", ErrDecodeTimeout, p.cfg.DecodeTimeout)
		}
		return nil, dctx.Err()
	}
}

func (p *Pipeline) decodeKind(ctx context.Context, kind decode.Kind, data []byte) (*decoded, error) {
	switch kind {
	case decode.KindImage:
		img, err := decode.Image(data)
		if err != nil {
			return nil, err
		}
		if p.cfg.OCR == nil {
			return nil, errors.New("no OCR engine configured for image input")
		}
		ocrRes, err := p.cfg.OCR.Recognize(ctx, img)
		if err != nil {
			return nil, err
		}
		return &decoded{text: ocrRes.Text, words: ocrRes.Words, img: img}, nil

	case decode.KindPDF:
		pages, err := decode.PDFPageCount(data)
		if err != nil {
			return nil, err
		}
		if pages > maxPDFPages {
			return nil, fmt.Errorf("pdf has %d pages, limit is %d", pages, maxPDFPages)
		}
		text, err := decode.PDFText(data)
		if err != nil {
			return nil, err
		}
		// Embedded images surface as regions so the review UI can pair
		// them with items by hand; a PDF carries no word coordinates,
		// so spatial matching never runs on this path.
		embedded, err := decode.PDFImages(data)
		if err != nil {
			embedded = nil
		}
		return &decoded{text: text, embedded: embedded}, nil

	case decode.KindSpreadsheet:
		records, err := decode.XLSX(data)
		if err != nil {
			return nil, err
		}
		return &decoded{records: records}, nil

	case decode.KindCSV:
		records, err := decode.CSV(data)
		if err != nil {
			return nil, err
		}
		return &decoded{records: records}, nil

	default:
		return nil, decode.ErrUnsupported
	}
}

// importRecords converts structured rows into items at confidence
// 100. The records were typed by the uploader, so the heuristic
// strategies are skipped entirely; the validator still applies.
func importRecords(records []decode.Record) []menu.Item {
	items := make([]menu.Item, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		price, ok := extract.ParsePrice(rec.Price)
		if !ok {
			continue
		}
		it := menu.Item{
			Name:        menu.CleanName(rec.Name),
			Price:       price,
			Currency:    menu.DefaultCurrency,
			Category:    rec.Category,
			Confidence:  100,
			Source:      menu.SourceImport,
			RegionIndex: -1,
		}
		if it.Category == "" {
			it.Category = menu.InferCategory(it.Name)
		}
		if !menu.IsValid(it) {
			continue
		}
		key := menu.Key(it.Name, it.Price)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		it.ID = len(items) + 1
		items = append(items, it)
	}
	return items
}

// annotateReview flags items below the caller-defined confidence
// floor. Annotation only, never an error.
func (p *Pipeline) annotateReview(items []menu.Item) {
	if p.cfg.ConfidenceFloor <= 0 {
		return
	}
	for i := range items {
		if items[i].Confidence < p.cfg.ConfidenceFloor {
			items[i].NeedsReview = true
		}
	}
}
