package so3

import "sync"

var (
	stdAlgebra   = sync.OnceValue(NewAlgebra)
	stdQuat      = sync.OnceValue(func() *QuatGroup { return NewQuatGroup(stdAlgebra()) })
	stdDcm       = sync.OnceValue(func() *DcmGroup { return NewDcmGroup(stdAlgebra()) })
	stdEulerB321 = sync.OnceValue(func() *EulerB321Group { return NewEulerB321Group(stdAlgebra()) })
)

// StdAlgebra returns the shared so(3) instance.
func StdAlgebra() *Algebra { return stdAlgebra() }

// StdQuat returns the shared quaternion group over StdAlgebra.
func StdQuat() *QuatGroup { return stdQuat() }

// StdDcm returns the shared matrix group over StdAlgebra.
func StdDcm() *DcmGroup { return stdDcm() }

// StdEulerB321 returns the shared Euler-angle group over StdAlgebra.
func StdEulerB321() *EulerB321Group { return stdEulerB321() }
