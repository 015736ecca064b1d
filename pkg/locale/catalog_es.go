package locale

// spanish overrides english; missing entries fall back to english text.
var spanish = map[MessageID]string{
	FileManip:         "Manipulación de archivos",
	ProcessDirectives: "Directivas de procesamiento",
	CharEncoding:      "Codificaciones de caracteres",
	Misc:              "Misceláneas",

	LabelFile:   "archivo",
	LabelColumn: "columna",
	LabelLevel:  "nivel",
	LabelLang:   "idioma",
	LabelOption: "opción",

	OptOutput:     "escribir la salida en el <archivo> especificado",
	OptConfig:     "establecer las opciones de configuración desde el <archivo> especificado",
	OptFile:       "escribir errores y advertencias en el <archivo> especificado",
	OptModify:     "modificar los archivos de entrada originales",
	OptIndent:     "indentar el contenido de los elementos",
	OptUpper:      "forzar etiquetas a mayúsculas",
	OptQuiet:      "suprimir la salida no esencial",
	OptVersion:    "mostrar la versión de Tidy",
	OptHelp:       "listar las opciones de la línea de comandos",
	OptHelpConfig: "listar todas las opciones de configuración",
	OptShowConfig: "listar los valores de configuración actuales",
	OptHelpOption: "mostrar una descripción de la <opción>",

	HelpConfigName:    "Nombre",
	HelpConfigType:    "Tipo",
	HelpConfigAllowed: "Valores permitidos",
	ShowConfigValue:   "Valor actual",
	Version:           "HTML Tidy versión %s\n",
	VersionPlatform:   "HTML Tidy para %s versión %s\n",
	UnknownOption:     "opción desconocida: %c\n",
	UnknownOptionName: "opción desconocida",
	MustSpecifyOption: "Se debe especificar un nombre de opción.",
	LoadConfigFailed:  "La carga del archivo de configuración \"%s\" falló, err = %d\n",
	CannotOpenFile:    "No se puede abrir \"%s\"\n",
	SummaryCounts:     "¡Tidy encontró %d advertencias y %d errores!\n",
	SummaryClean:      "No se encontraron advertencias ni errores.\n\n",
	DiagWarning:       "Advertencia: ",
	DiagError:         "Error: ",
	MissingDoctype:    "falta la declaración <!DOCTYPE>",
}
