package fiware

const urnPrefix string = "urn:ngsi-ld:"

const (
	BeachTypeName string = "Beach"
	BeachIDPrefix string = urnPrefix + BeachTypeName + ":"

	DeviceTypeName string = "Device"
	DeviceIDPrefix string = urnPrefix + DeviceTypeName + ":"

	IndoorEnvironmentObservedTypeName string = "IndoorEnvironmentObserved"
	IndoorEnvironmentObservedIDPrefix string = urnPrefix + IndoorEnvironmentObservedTypeName + ":"

	WaterConsumptionObservedTypeName string = "WaterConsumptionObserved"
	WaterConsumptionObservedIDPrefix string = urnPrefix + WaterConsumptionObservedTypeName + ":"

	WeatherObservedTypeName string = "WeatherObserved"
	WeatherObservedIDPrefix string = urnPrefix + WeatherObservedTypeName + ":"
)
