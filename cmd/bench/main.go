package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"time"

	"github.com/labstack/gommon/bytes"
	"github.com/sirupsen/logrus"

	"tinylang/internal"
)

const counter = `
let a = 1;
while (a < %d) {
    a = a + 1;
}
print(a);
`

type discardPrinter struct{}

func (discardPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Fprintln(ioutil.Discard, a...)
}

func main() {
	limit := flag.Int("n", 10000000, "loop bound of the counting program")
	rounds := flag.Int("rounds", 3, "number of timed runs")
	flag.Parse()

	source := fmt.Sprintf(counter, *limit)

	var best time.Duration
	for i := 0; i < *rounds; i++ {
		start := time.Now()
		if err := internal.RunSourceWithPrinter(source, discardPrinter{}); err != nil {
			logrus.Fatal(err)
		}
		elapsed := time.Since(start)
		if best == 0 || elapsed < best {
			best = elapsed
		}
		logrus.WithFields(logrus.Fields{"round": i + 1, "elapsed": elapsed}).Info("interpreted")
	}

	start := time.Now()
	generated, err := internal.EmitSource(source)
	if err != nil {
		logrus.Fatal(err)
	}
	logrus.WithFields(logrus.Fields{
		"elapsed": time.Since(start),
		"size":    bytes.Format(int64(len(generated))),
	}).Info("emitted")

	fmt.Println("Best interpreter time:", best)
}
