// Package gemcore is a convenience facade over the Google GenAI SDK
// (google.golang.org/genai) for Gemini models.
//
// It normalizes configuration loading, unifies the call shapes for
// generation, streaming, chat, token counting and file upload, and passes
// multimodal inputs, structured-output schemas, tool declarations and
// thinking parameters through to the SDK. Responses are the SDK's own
// types, returned unchanged; gemcore adds no protocol, transport, or retry
// logic of its own.
//
// # Configuration
//
// Settings resolve from explicit client options, then the process
// environment (GOOGLE_API_KEY, GEMINI_MODEL, GOOGLE_CLOUD_PROJECT,
// GOOGLE_CLOUD_LOCATION), a .env file, and finally an optional YAML config
// file. With a project and location but no API key, the client targets
// Vertex AI using application default credentials.
//
// # Basic usage
//
//	client, err := gemcore.New(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, err := client.GenerateContent(ctx, []*genai.Part{gemcore.Text("What is the capital of France?")})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(gemcore.ResponseText(resp))
//
// # Streaming
//
//	events, err := client.Stream(ctx, []*genai.Part{gemcore.Text("Tell me a story")})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for ev := range events {
//	    if ev.Err != nil {
//	        log.Fatal(ev.Err)
//	    }
//	    fmt.Print(ev.Delta)
//	}
//
// # Structured output
//
//	type Recipe struct {
//	    Name  string   `json:"name" desc:"Recipe name" required:"true"`
//	    Steps []string `json:"steps" required:"true"`
//	}
//
//	recipe, err := gemcore.GenerateInto[Recipe](ctx, client,
//	    []*genai.Part{gemcore.Text("A simple pancake recipe")})
//
// # Tool calling
//
// Declare tools with the tool package and let GenerateWithTools run the
// execution loop:
//
//	reg := tool.NewRegistry()
//	tool.MustBindTo(reg, "get_weather", "Current weather for a city",
//	    func(ctx context.Context, args WeatherArgs) (string, error) {
//	        return lookupWeather(args.City)
//	    })
//
//	resp, err := client.GenerateWithTools(ctx, reg,
//	    []*genai.Part{gemcore.Text("What's the weather in Paris?")})
package gemcore
