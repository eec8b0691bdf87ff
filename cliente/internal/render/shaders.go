package render

// maxDirLights é o número de luzes direcionais que o shader aceita.
const maxDirLights = 4

const voxelInstancedVertexShader = `
#version 330

in vec3 vertexPosition;
in vec3 vertexNormal;
in mat4 instanceTransform;

uniform mat4 mvp;

out vec3 fragNormal;

void main()
{
    // Instâncias são translações puras: a normal não precisa da inversa-transposta
    fragNormal = normalize(mat3(instanceTransform) * vertexNormal);
    gl_Position = mvp * instanceTransform * vec4(vertexPosition, 1.0);
}
`

const voxelLambertFragmentShader = `
#version 330

in vec3 fragNormal;

uniform vec4 colDiffuse;
uniform vec3 ambientColor;
uniform vec3 lightDir[4];
uniform vec3 lightColor[4];
uniform vec2 depthOffset; // (factor, units), igual ao glPolygonOffset

out vec4 finalColor;

void main()
{
    vec3 normal = normalize(fragNormal);

    // Lambert: ambiente + soma das direcionais (slots sem luz têm cor zero)
    vec3 light = ambientColor;
    for (int i = 0; i < 4; i++) {
        light += lightColor[i] * max(dot(normal, -lightDir[i]), 0.0);
    }

    finalColor = vec4(clamp(colDiffuse.rgb * light, 0.0, 1.0), colDiffuse.a);

    // Deslocamento de profundidade por inclinação + unidades mínimas do z-buffer de 24 bits
    float slope = max(abs(dFdx(gl_FragCoord.z)), abs(dFdy(gl_FragCoord.z)));
    gl_FragDepth = gl_FragCoord.z + depthOffset.x * slope + depthOffset.y * (1.0 / 16777216.0);
}
`

// Shaders das arestas: posição já em coordenadas de mundo, cor sólida sem luz.
// Terminados em \x00 porque vão direto para o OpenGL.
const lineVertexShader = `
#version 330

layout(location = 0) in vec3 position;

uniform mat4 mvp;

void main()
{
    gl_Position = mvp * vec4(position, 1.0);
}
` + "\x00"

const lineFragmentShader = `
#version 330

uniform vec4 lineColor;

out vec4 finalColor;

void main()
{
    finalColor = lineColor;
}
` + "\x00"
