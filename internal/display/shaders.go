package display

// Shader sources for the image viewer

// Vertex shader for the fullscreen quad
const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec2 aTexCoord;

out vec2 TexCoord;

void main() {
    gl_Position = vec4(aPos, 1.0);
    TexCoord = aTexCoord;
}
` + "\x00"

// Fragment shader sampling the rendered image
const fragmentShaderSource = `
#version 410 core
in vec2 TexCoord;
out vec4 FragColor;

uniform sampler2D imageTexture;

void main() {
    FragColor = texture(imageTexture, TexCoord);
}
` + "\x00"
