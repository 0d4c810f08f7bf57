// Command woods trains a gradient-boosted regression ensemble on
// .npy-encoded feature/target files and reports its RMSE, mirroring
// the teacher's extra_boost_main demo harness but against the woods
// library instead of the teacher's EBooster.
package main

import (
	"flag"
	"log"
	"math"
	"os"

	"github.com/goccy/go-graphviz"
	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/gowoods/woods"
)

func readNpy(fileName string) *mat.Dense {
	f, err := os.Open(fileName)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	r, err := npyio.NewReader(f)
	if err != nil {
		log.Fatal(err)
	}

	m := &mat.Dense{}
	if err := r.Read(m); err != nil {
		log.Fatal(err)
	}
	return m
}

// rmse reports the root-mean-square error between predicted and
// target, the same learning-curve quantity the teacher's
// EMatrix.Message logs for each boosting round.
func rmse(predicted, target *mat.Dense) float64 {
	n, _ := predicted.Dims()
	squaredDiffs := make([]float64, n)
	for i := 0; i < n; i++ {
		d := predicted.At(i, 0) - target.At(i, 0)
		squaredDiffs[i] = d * d
	}
	return math.Sqrt(stat.Mean(squaredDiffs, nil))
}

func strategyFromName(name string) woods.Strategy {
	switch name {
	case "mean":
		return woods.StrategyMean
	case "uniform":
		return woods.StrategyUniform
	case "truncated-normal":
		return woods.StrategyTruncatedNormal
	case "median":
		return woods.StrategyMedian
	case "best":
		return woods.StrategyBest
	default:
		log.Fatalf("unknown -strategy %q", name)
		return woods.StrategyMean
	}
}

func main() {
	trainX := flag.String("train-x", "", "path to a .npy file holding the training feature matrix")
	trainY := flag.String("train-y", "", "path to a .npy file holding the training target vector")
	testX := flag.String("test-x", "", "optional path to a .npy file holding a held-out feature matrix")
	testY := flag.String("test-y", "", "optional path to a .npy file holding a held-out target vector")
	depth := flag.Int("depth", 4, "tree depth")
	learningRate := flag.Float64("learning-rate", 0.1, "boosting learning rate")
	iterations := flag.Int("iterations", 100, "number of boosting rounds")
	splitIterations := flag.Int("split-iterations", 1, "candidate thresholds drawn per feature for Uniform/TruncatedNormal")
	strategyName := flag.String("strategy", "uniform", "mean | uniform | truncated-normal | median | best")
	seed := flag.Uint("seed", 0, "RNG seed")
	outGraph := flag.String("out-graph", "", "optional path to render the first boosted tree to (.svg)")

	flag.Parse()

	if *trainX == "" || *trainY == "" {
		log.Fatal("-train-x and -train-y are required")
	}

	x := readNpy(*trainX)
	y := readNpy(*trainY)

	model := woods.NewEnsembleModel(*depth, strategyFromName(*strategyName), *splitIterations, *learningRate, *iterations)
	if err := model.Fit(x, y, uint32(*seed)); err != nil {
		log.Fatal(err)
	}

	trainPred, err := model.Predict(x)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("train RMSE = %f", rmse(trainPred, y))

	if *testX != "" && *testY != "" {
		tx := readNpy(*testX)
		ty := readNpy(*testY)
		testPred, err := model.Predict(tx)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("test RMSE = %f", rmse(testPred, ty))
	}

	if *outGraph != "" {
		tree := model.FirstTree()
		if tree == nil {
			log.Print("no tree to render: ensemble was fit with zero iterations")
		} else {
			gv, graph, err := tree.DrawGraph()
			if err != nil {
				log.Fatal(err)
			}
			if err := gv.RenderFilename(graph, graphviz.SVG, *outGraph); err != nil {
				log.Fatal(err)
			}
		}
	}
}
