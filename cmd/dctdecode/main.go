package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"

	"github.com/Praveen47Billion/pdfbox/filter"
	"github.com/Praveen47Billion/pdfbox/jpegdec"
	"github.com/Praveen47Billion/pdfbox/util"
)

func main() {
	infile := flag.String("i", "", "input jpeg file")
	outfile := flag.String("o", "", "output raster file (defaults to input + .raw)")
	profileMode := flag.String("profile", "", "write a cpu or mem profile to the current directory")
	flag.Parse()

	if *infile == "" {
		fmt.Printf("input file must be specified\n")
		os.Exit(1)
	}

	switch *profileMode {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileHeap, profile.ProfilePath(".")).Stop()
	}

	data, err := os.ReadFile(*infile)
	if err != nil {
		log.Errorf("Error opening file: %v\n", err)
		return
	}

	target := util.IfThenElse(*outfile != "", *outfile, *infile+".raw")
	out, err := os.Create(target)
	if err != nil {
		log.Errorf("Error creating output file: %v\n", err)
		return
	}
	defer out.Close()

	registry := filter.NewDecoderRegistry(jpegdec.NewDecoder())
	dct := filter.NewDCTFilter(registry)

	start := time.Now()
	res, err := dct.Decode(bytes.NewReader(data), out, nil, 0)
	if err != nil {
		fmt.Printf("Error decoding: %v\n", err)
		return
	}
	fmt.Printf("decoding took %d ms\n", time.Since(start).Milliseconds())
	fmt.Printf("%d x %d raster with %d bands written to %s\n", res.Width, res.Height, res.Bands, target)
	for _, w := range res.Warnings {
		fmt.Printf("warning: %s\n", w.Message)
	}
}
