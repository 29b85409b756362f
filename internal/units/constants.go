package units

// SI constants for the Stefan-Boltzmann relation. Solar values are the IAU
// 2015 nominal values.
const (
	StefanBoltzmann = 5.670374419e-8 // W m^-2 K^-4
	SolarRadius     = 6.957e8        // m
	SolarLuminosity = 3.828e26       // W
)
