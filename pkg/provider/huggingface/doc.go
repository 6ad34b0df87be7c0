// Package huggingface implements provider.Provider for the Hugging Face
// Inference API text-generation task. The default model is an
// instruction-tuned Llama 3, prompted with its chat template.
package huggingface
