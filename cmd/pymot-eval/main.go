package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/schollz/progressbar/v3"

	"github.com/jalabort/pymot-go"
)

func main() {
	gtPath := flag.String("gt", "", "path to the ground-truth JSON document")
	hypPath := flag.String("hyp", "", "path to the hypotheses JSON document")
	configPath := flag.String("config", "", "optional .ini file with overlap_threshold/sync_delta/forbidden_cost")
	keepDebug := flag.Bool("debug", false, "retain per-frame debug records")
	flag.Parse()

	if *gtPath == "" || *hypPath == "" {
		fmt.Fprintln(os.Stderr, "usage: pymot-eval -gt <file> -hyp <file> [-config <file>] [-debug]")
		os.Exit(2)
	}

	gt, err := readDocument(*gtPath)
	if err != nil {
		log.Fatalf("failed to read ground truth: %v", err)
	}
	hyp, err := readDocument(*hypPath)
	if err != nil {
		log.Fatalf("failed to read hypotheses: %v", err)
	}

	gtOK, hypOK := validateDocuments(gt, hyp)
	if !gtOK {
		log.Printf("Warning: ground truth document failed format validation, continuing anyway")
	}
	if !hypOK {
		log.Printf("Warning: hypotheses document failed format validation, continuing anyway")
	}

	config, err := pymot.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	evaluator, err := pymot.NewEvaluator(gt.toAnnotationSet(), hyp.toHypothesisSet(), config, *keepDebug)
	if err != nil {
		log.Fatalf("failed to construct evaluator: %v", err)
	}

	if err := runEvaluate(evaluator, len(gt.Frames)); err != nil {
		log.Fatalf("evaluation failed: %v", err)
	}

	printResults(evaluator)
}

func readDocument(path string) (*rawDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var doc rawDocument
	if err := json.NewDecoder(f).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}
	return &doc, nil
}

// runEvaluate drives Evaluate behind a progress bar sized to the
// ground-truth frame count.
//
// Evaluate walks every frame internally in one call, so the bar is driven
// to completion once evaluation returns rather than stepped frame by
// frame from inside the core package, which stays free of any
// presentation dependency.
func runEvaluate(evaluator *pymot.Evaluator, frameCount int) error {
	bar := progressbar.NewOptions(frameCount,
		progressbar.OptionSetDescription("evaluating"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)

	err := evaluator.Evaluate()
	_ = bar.Set(frameCount)
	return err
}

func printResults(e *pymot.Evaluator) {
	fmt.Printf("total annotations:         %d\n", e.TotalAnnotations())
	fmt.Printf("fn:                        %d\n", e.FalseNegatives())
	fmt.Printf("fp:                        %d\n", e.FalsePositives())
	fmt.Printf("idsw:                      %d\n", e.IdentitySwitches())
	fmt.Printf("correspondences:           %d\n", e.Correspondences())
	fmt.Printf("overlap:                   %v\n", e.Overlap())
	fmt.Println()

	fmt.Printf("fn rate:                   %v\n", e.FalseNegativeRate())
	fmt.Printf("fp rate:                   %v\n", e.FalsePositiveRate())
	fmt.Printf("idsw rate:                 %v\n", e.IdentitySwitchRate())

	if mota, err := e.MOTA(); err != nil {
		fmt.Printf("mota:                      error: %v\n", err)
	} else {
		fmt.Printf("mota:                      %v\n", mota)
	}
	if motp, err := e.MOTP(); err != nil {
		fmt.Printf("motp:                      error: %v\n", err)
	} else {
		fmt.Printf("motp:                      %v\n", motp)
	}

	fmt.Printf("tracking precision:        %v\n", e.TrackingPrecision())
	fmt.Printf("tracking recall:           %v\n", e.TrackingRecall())
	fmt.Println()

	fmt.Printf("lonely annotation tracks:  %d\n", e.LonelyAnnotationTracks())
	fmt.Printf("annotation tracks:         %d\n", e.AnnotationTracks())
	fmt.Printf("lonely hypothesis tracks:  %d\n", e.LonelyHypothesisTracks())
	fmt.Printf("hypothesis tracks:         %d\n", e.HypothesisTracks())
}
