package main

type FlagType int
type FlagMap map[FlagType]string

const (
	schemaPath FlagType = iota
	entityType
	plainOutput

	inputPath
	outputPath

	logFormat
)

const stdio string = "-"

func DefaultFlags() FlagMap {
	return FlagMap{
		schemaPath:  "/opt/diwise/config/entities.yaml",
		plainOutput: "false",

		inputPath:  stdio,
		outputPath: stdio,

		logFormat: "json",
	}
}
