package cowtrie

import (
	"sync"

	"github.com/golang/glog"
)

// TestPointID -- data type defining a testpoint identifier.
type TestPointID int

const (
	testPointInvalid     TestPointID = 0
	testPointFailPublish             = 1
	testPointFailDecode              = 2
	testPointMax                     = 3
)

// TestPoint -- describes a given fault injection point.
// desc    - string description of the test point.
// enabled - whether this test point is enabled.
// iters   - # of times the test point was reached while enabled.
// freq    - fire on every freq-th iteration.
type TestPoint struct {
	desc    string
	enabled bool
	iters   int
	freq    int
}

// testPoints is indexed by TestPointID. Writers of the catalog reach test
// points concurrently, hence the mutex.
var (
	testPointsMu sync.Mutex
	testPoints   = [testPointMax]TestPoint{
		testPointInvalid:     {desc: "invalid"},
		testPointFailPublish: {desc: "fail snapshot publish"},
		testPointFailDecode:  {desc: "fail table decode"},
	}
	numTestPointsEnabled int
)

func isValidTestPoint(tpID TestPointID) bool {
	return tpID > testPointInvalid && tpID < testPointMax
}

// TestPointIsEnabled - whether a test point is enabled, and its frequency.
// For an invalid id, reports whether any test point is enabled.
func TestPointIsEnabled(tpID TestPointID) (bool, int) {
	testPointsMu.Lock()
	defer testPointsMu.Unlock()
	if !isValidTestPoint(tpID) {
		return numTestPointsEnabled > 0, 0
	}
	return testPoints[tpID].enabled, testPoints[tpID].freq
}

// TestPointEnable - fire the test point on every freq-th execution. No-op if
// already enabled or if freq is not positive.
func TestPointEnable(tpID TestPointID, freq int) {
	testPointsMu.Lock()
	defer testPointsMu.Unlock()
	if !isValidTestPoint(tpID) || freq <= 0 {
		glog.V(2).Infof("Ignoring enable call for %v, %d", tpID, freq)
		return
	}
	tp := &testPoints[tpID]
	if tp.enabled {
		glog.V(2).Infof("testpoint already enabled: %+v (%d)", *tp, freq)
		return
	}
	numTestPointsEnabled++
	tp.enabled = true
	tp.freq = freq
	glog.Infof("enabling test point %+v", *tp)
}

// TestPointDisable - disables a test point, keeping its settings.
func TestPointDisable(tpID TestPointID) {
	testPointsMu.Lock()
	defer testPointsMu.Unlock()
	if isValidTestPoint(tpID) && testPoints[tpID].enabled {
		disable(tpID)
	}
}

// disable - requires testPointsMu.
func disable(tpID TestPointID) {
	numTestPointsEnabled--
	testPoints[tpID].enabled = false
	glog.Infof("disabling test point %+v", testPoints[tpID])
}

// TestPointReset - disables a test point and clears its counters.
func TestPointReset(tpID TestPointID) {
	testPointsMu.Lock()
	defer testPointsMu.Unlock()
	reset(tpID)
}

func reset(tpID TestPointID) {
	if !isValidTestPoint(tpID) {
		return
	}
	if testPoints[tpID].enabled {
		disable(tpID)
	}
	testPoints[tpID].freq = 0
	testPoints[tpID].iters = 0
}

// TestPointResetAll - reset all test points.
func TestPointResetAll() {
	testPointsMu.Lock()
	defer testPointsMu.Unlock()
	glog.Infof("resetting all test points")
	for id := range testPoints {
		reset(TestPointID(id))
	}
}

// TestPointExecute - whether the caller should inject its fault now.
func TestPointExecute(tpID TestPointID) bool {
	testPointsMu.Lock()
	defer testPointsMu.Unlock()
	if !isValidTestPoint(tpID) || !testPoints[tpID].enabled {
		return false
	}
	tp := &testPoints[tpID]
	tp.iters++
	if tp.iters%tp.freq != 0 {
		glog.V(2).Infof("testpoint %s not executed (iter: %d)", tp.desc, tp.iters)
		return false
	}
	glog.Infof("executing testpoint %s (iter: %d, freq: %d)", tp.desc, tp.iters, tp.freq)
	return true
}
