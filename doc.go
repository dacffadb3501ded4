// askweb answers natural-language questions from the command line.
//
// A question is classified first: weather questions ("what's the weather in
// Tokyo?") are answered with a live OpenWeatherMap lookup, everything else
// goes through retrieval-augmented generation: an Exa neural web search
// retrieves content, which is formatted into a cited context block and handed
// to a hosted LLM (Gemini or any OpenAI-compatible endpoint) to synthesize
// the final answer with [Source N] citations.
//
// # Usage
//
//	askweb "what changed in the EU AI act this year?"
//	askweb -n 8 -report answer.html "state of solid-state batteries"
//	askweb -history 10
//
// Configuration comes from the environment (a .env file is honored):
// EXA_API_KEY, GEMINI_API_KEY (or OPENAI_API_KEY with LLM_PROVIDER=openai),
// OPENWEATHER_API_KEY, and optionally REDIS_ADDR to cache search responses
// and HISTORY_DB for the local query history.
//
// The packages compose as a library too: exa and weather are standalone API
// clients, rag is the retrieval/generation engine, and tool wraps both
// clients as langchaingo tools for use in agents.
package askweb
