package main

/* Tim Henderson (tadh@case.edu)
*
* Copyright (c) 2015, Tim Henderson, Case Western Reserve University
* Cleveland, Ohio 44106. All Rights Reserved.
*
* This library is free software; you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation; either version 3 of the License, or (at
* your option) any later version.
*
* This library is distributed in the hope that it will be useful, but
* WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
* General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this library; if not, write to the Free Software
* Foundation, Inc.,
*   51 Franklin Street, Fifth Floor,
*   Boston, MA  02110-1301
*   USA
 */

import (
	"fmt"
	"log"
	"os"
	"runtime/pprof"
)

import (
	"github.com/timtadh/data-structures/errors"
	"github.com/timtadh/getopt"
)

import (
	"github.com/timtadh/assoc/cmd"
	"github.com/timtadh/assoc/config"
	"github.com/timtadh/assoc/miners"
	"github.com/timtadh/assoc/miners/levelwise"
	"github.com/timtadh/assoc/reporters"
	"github.com/timtadh/assoc/rules"
	"github.com/timtadh/assoc/stats"
	"github.com/timtadh/assoc/types/itemset"
)

func init() {
	cmd.UsageMessage = "assoc --help"
	cmd.ExtendedMessage = `
assoc - mine frequent itemsets and association rules

$ assoc -o <path> --support=<float> --confidence=<float> [Global Options] \
    <loader> <input-path> \
    [<reporter>...]

Note: You may either supply the <input-path> as a regular file or a gzipped
      file. If supplying a gzip file the file extension must be '.gz'.

Note: If you don't supply a reporter it defaults to 'log file'.


Global Options
    -h, --help                view this message
    --loaders                 show the available loaders
    --reporters               show the available reporters
    -o, --output=<path>       path to output directory (required)
                              NB: will overwrite contents of dir
    --support=<float>         minimum relative support in (0, 1] (required)
    --confidence=<float>      minimum rule confidence in [0, 1]
                              (default 0, keep all rules)
    --workers=<int>           shard support counting over this many
                              goroutines (-1 for one per cpu)
    --skip-log=<level>        don't output the given log level.

Developer Options
    --cpu-profile=<path>      write a cpu-profile to this location

Loaders
    basket                    one transaction per line, item labels separated
                              by whitespace

       basket Example file:
            milk bread eggs
            bread butter
            milk bread butter eggs

    csv                       csv with a header row; each row becomes a
                              transaction of column=value items, empty cells
                              skipped

       csv Example file:
            weather,temp
            sunny,hot
            rainy,
            sunny,mild

Reporters
    log                       log the frequent itemsets
    count                     write the number of frequent itemsets to
                              count.txt in the output dir
    file                      write the itemsets to patterns.items in the
                              output dir

    Rules are always derived from the mined levels and written to
    rules.txt in the output dir.

    Examples

        $ assoc -o /tmp/assoc --support=.6 --confidence=.6 \
            basket ./transactions.dat.gz \
            log file

        $ assoc -o /tmp/assoc --support=.1 \
            csv ./survey.csv \
            count
`
}

func loaders() map[string]itemset.Loader {
	return map[string]itemset.Loader{
		"basket": itemset.NewBasketLoader(),
		"csv":    itemset.NewCsvLoader(),
	}
}

func makeReporter(name string, conf *config.Config, fmtr itemset.Formatter) (miners.Reporter, error) {
	switch name {
	case "log":
		return reporters.NewLog(fmtr, "INFO", ""), nil
	case "count":
		return reporters.NewCount(conf, "count.txt")
	case "file":
		return reporters.NewFile(conf, fmtr, "patterns")
	}
	return nil, errors.Errorf("unknown reporter '%v'", name)
}

func main() {
	os.Exit(run())
}

func run() int {
	args, optargs, err := getopt.GetOpt(
		os.Args[1:],
		"ho:",
		[]string{
			"help",
			"output=",
			"loaders", "reporters",
			"support=",
			"confidence=",
			"workers=",
			"skip-log=",
			"cpu-profile=",
		},
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	output := ""
	support := 0.0
	confidence := 0.0
	workers := 0
	cpuProfile := ""
	for _, oa := range optargs {
		switch oa.Opt() {
		case "-h", "--help":
			cmd.Usage(0)
		case "-o", "--output":
			output = cmd.EmptyDir(oa.Arg())
		case "--support":
			support = cmd.ParseFloat(oa.Arg())
		case "--confidence":
			confidence = cmd.ParseFloat(oa.Arg())
		case "--workers":
			workers = cmd.ParseInt(oa.Arg())
		case "--loaders":
			fmt.Fprintln(os.Stderr, "Loaders:")
			for k := range loaders() {
				fmt.Fprintln(os.Stderr, "  ", k)
			}
			os.Exit(0)
		case "--reporters":
			fmt.Fprintln(os.Stderr, "Reporters:")
			for _, k := range []string{"log", "count", "file"} {
				fmt.Fprintln(os.Stderr, "  ", k)
			}
			os.Exit(0)
		case "--skip-log":
			level := oa.Arg()
			errors.Logf("INFO", "not logging level %v", level)
			errors.SkipLogging[level] = true
		case "--cpu-profile":
			cpuProfile = cmd.AssertFile(oa.Arg())
		default:
			fmt.Fprintf(os.Stderr, "Unknown flag '%v'\n", oa.Opt())
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
	}

	if support <= 0 || support > 1 {
		fmt.Fprintf(os.Stderr, "Support must be in (0, 1], got %v\n", support)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if confidence < 0 || confidence > 1 {
		fmt.Fprintf(os.Stderr, "Confidence must be in [0, 1], got %v\n", confidence)
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if output == "" {
		fmt.Fprintf(os.Stderr, "You must supply an output dir (-o)\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	if len(args) < 2 {
		fmt.Fprintf(os.Stderr, "You must supply a loader and an input path\n")
		cmd.Usage(cmd.ErrorCodes["opts"])
	}

	loader, has := loaders()[args[0]]
	if !has {
		fmt.Fprintf(os.Stderr, "Unknown loader '%v'\n", args[0])
		cmd.Usage(cmd.ErrorCodes["opts"])
	}
	inputPath := cmd.AssertFileExists(args[1])

	if cpuProfile != "" {
		errors.Logf("DEBUG", "starting cpu profile: %v", cpuProfile)
		f, err := os.Create(cpuProfile)
		if err != nil {
			log.Fatal(err)
		}
		err = pprof.StartCPUProfile(f)
		if err != nil {
			log.Fatal(err)
		}
		defer func() {
			errors.Logf("DEBUG", "closing cpu profile")
			pprof.StopCPUProfile()
			err := f.Close()
			errors.Logf("DEBUG", "closed cpu profile, err: %v", err)
		}()
	}

	conf := &config.Config{
		Output:      output,
		Support:     support,
		Confidence:  confidence,
		Parallelism: workers,
	}

	input, closeall := cmd.Input(inputPath)
	txs, err := loader.Load(input)
	closeall()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading '%v': %v\n", inputPath, err)
		return 1
	}
	errors.Logf("INFO", "loaded %v transactions from %v", txs.Len(), inputPath)

	fmtr := itemset.Formatter{N: txs.Len()}

	rptNames := args[2:]
	if len(rptNames) == 0 {
		rptNames = []string{"log", "file"}
	}
	chain := &reporters.Chain{}
	for _, name := range rptNames {
		rpt, err := makeReporter(name, conf, fmtr)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			cmd.Usage(cmd.ErrorCodes["opts"])
		}
		chain.Reporters = append(chain.Reporters, rpt)
	}

	miner := levelwise.NewMiner(conf)
	levels, err := miner.Mine(txs, chain)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Mining failed: %v\n", err)
		return 1
	}
	if cerr := chain.Close(); cerr != nil {
		fmt.Fprintf(os.Stderr, "Closing reporters failed: %v\n", cerr)
		return 1
	}
	if cerr := miner.Close(); cerr != nil {
		fmt.Fprintf(os.Stderr, "Closing miner failed: %v\n", cerr)
		return 1
	}
	errors.Logf("INFO", "mined %v levels", len(levels))

	derived, err := rules.Derive(levels, txs, conf.Confidence)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Rule derivation failed: %v\n", err)
		return 1
	}
	confidences := make([]float64, 0, len(derived))
	for _, r := range derived {
		confidences = append(confidences, r.Confidence)
	}
	errors.Logf("INFO", "derived %v rules, mean confidence %.4f", len(derived), stats.Mean(confidences))

	f, err := os.Create(conf.OutputFile("rules.txt"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating rules file: %v\n", err)
		return 1
	}
	for _, r := range derived {
		_, err := fmt.Fprintf(f,
			"%v -> %v supp %.4f conf %.4f lift %.4f lev %.4f conv %.4f zhangs %.4f jaccard %.4f cert %.4f kulc %.4f\n",
			r.Antecedent, r.Consequent, r.Support, r.Confidence, r.Lift,
			r.Leverage, r.Conviction, r.Zhangs, r.Jaccard, r.Certainty,
			r.Kulczynski)
		if err != nil {
			f.Close()
			fmt.Fprintf(os.Stderr, "Error writing rules file: %v\n", err)
			return 1
		}
	}
	if err := f.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error closing rules file: %v\n", err)
		return 1
	}
	return 0
}
